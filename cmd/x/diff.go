package main

import (
	"fmt"

	xmlfmt "github.com/signadot/xml-format/go-xml"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	fromDoc, err := xmlfmt.Load(args[0], false)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[0], err)
	}
	toDoc, err := xmlfmt.Load(args[1], false)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[1], err)
	}
	if fromDoc.Root().Equals(toDoc.Root()) {
		return nil
	}
	from, err := fromDoc.Dump(true)
	if err != nil {
		return err
	}
	to, err := toDoc.Dump(true)
	if err != nil {
		return err
	}
	if err := printDiff(cc, from, to); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
