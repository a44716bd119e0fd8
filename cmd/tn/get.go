package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treenav/go-treenav"
	"github.com/treenav/go-treenav/encode"
	"github.com/treenav/go-treenav/libdiff"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	expr := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		acc, err := treenav.At(node, expr)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		if cfg.Contract {
			fmt.Fprintf(cc.Out, "# contract: %s\n", acc.Contract())
		}
		res, ok, err := acc.Resolve()
		if err != nil {
			return fmt.Errorf("error resolving %s in %s: %w", expr, arg, err)
		}
		if !ok {
			// empty, not an error: print nothing and don't yell either
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	text, differs := libdiff.Text(from, to, cfg.Color)
	if !differs {
		return nil
	}
	if _, err := fmt.Fprint(cc.Out, text); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
