package main

import (
	"fmt"
	"os"

	xmlfmt "github.com/signadot/xml-format/go-xml"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func xmlFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.W && cfg.D {
		return fmt.Errorf("%w: -w and -d are mutually exclusive", cli.ErrUsage)
	}
	if cfg.W && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	inputs, err := readInputs(args)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		doc, err := xmlfmt.Parse(in.data, false)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", in.name, err)
		}
		out, err := doc.Dump(!cfg.C)
		if err != nil {
			return err
		}
		switch {
		case cfg.D:
			if err := printDiff(cc, string(in.data), out); err != nil {
				return err
			}
		case cfg.W:
			if err := os.WriteFile(in.name, []byte(out), 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", in.name, err)
			}
		default:
			if _, err := fmt.Fprint(cc.Out, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func printDiff(cc *cli.Context, from, to string) error {
	if from == to {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	if f, ok := cc.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		_, err := fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return err
	}
	patches := dmp.PatchMake(from, diffs)
	_, err := fmt.Fprint(cc.Out, dmp.PatchToText(patches))
	return err
}
