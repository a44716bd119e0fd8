package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y, auto",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "patch",
			Description: "json-patch file to apply to the input before navigating",
			Type:        cli.NamedFuncOpt(cfg.patchOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tn").
		WithSynopsis("tn [opts] command [opts]").
		WithDescription("tn navigates object trees with policy-typed paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tnMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			FilterCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <objectpath> [files]").
		WithDescription("resolve a path against documents; '?' marks optional steps, '!' unsafe ones").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents in canonical form, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file> <file>").
		WithDescription("diff the canonical forms of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("filter").
		WithAliases("f").
		WithSynopsis("filter <objectpath> <predicate> [files]").
		WithDescription("keep list elements whose value satisfies an expr predicate").
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}
