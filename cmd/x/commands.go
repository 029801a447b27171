package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.setOutput, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "x").
		WithSynopsis("x [opts] command [opts]").
		WithDescription("x is a tool for working with XML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			defer cfg.closeOutput()
			args, err := cfg.Main.Parse(cc, args)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return cli.ErrNoCommandProvided
			}
			sub := cfg.Main.FindSub(cc, args[0])
			if sub == nil {
				return fmt.Errorf("%w: %q", cli.ErrNoSuchCommand, args[0])
			}
			err = sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}).
		WithSubs(
			FmtCommand(cfg),
			ViewCommand(cfg),
			LintCommand(cfg),
			DiffCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w|-d] [files]").
		WithDescription("Reformat XML documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmlFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view XML documents in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func LintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LintConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("lint").
		WithAliases("l").
		WithSynopsis("lint [-schema file.xsd] [files]").
		WithDescription("check documents for well-formedness and schema validity").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lint(cfg, cc, args)
		})
	cfg.Lint = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("compare two XML documents structurally").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
