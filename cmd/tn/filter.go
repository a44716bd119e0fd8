package main

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/treenav/go-treenav"
	"github.com/treenav/go-treenav/debug"
	"github.com/treenav/go-treenav/encode"
	"github.com/treenav/go-treenav/ir"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: filter requires an object path and a predicate", cli.ErrUsage)
	}
	pathExpr, predicate := args[0], args[1]
	args = args[2:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	prg, err := exprlang.Compile(predicate)
	if err != nil {
		return fmt.Errorf("%w: bad predicate: %v", cli.ErrUsage, err)
	}
	for _, arg := range args {
		node, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		acc, err := treenav.At(node, pathExpr)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		elems, ok, err := acc.AsList()
		if err != nil {
			return fmt.Errorf("error resolving %s in %s: %w", pathExpr, arg, err)
		}
		if !ok {
			continue
		}
		var kept []*ir.Node
		for i, el := range elems {
			n, _, err := el.Resolve()
			if err != nil {
				return err
			}
			env := map[string]any{
				"value": ir.ToAny(n),
				"index": i,
			}
			out, err := exprlang.Run(prg, env)
			if err != nil {
				return fmt.Errorf("error evaluating predicate on %s[%d]: %w", pathExpr, i, err)
			}
			keep, isBool := out.(bool)
			if !isBool {
				return fmt.Errorf("predicate yielded %T, want bool", out)
			}
			if debug.Filter() {
				debug.Logf("filter %s[%d] keep=%v value=%v\n", pathExpr, i, keep, n)
			}
			if keep {
				kept = append(kept, n.Clone())
			}
		}
		if err := encode.Encode(ir.FromSlice(kept), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
