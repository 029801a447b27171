package main

import (
	"fmt"

	"github.com/jacoelho/xsd"

	xmlfmt "github.com/signadot/xml-format/go-xml"
	"github.com/signadot/xml-format/go-xml/parse"

	"github.com/scott-cotton/cli"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		cfg.Lint.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var schema *xsd.Schema
	if cfg.Schema != "" {
		schema, err = xsd.LoadFile(cfg.Schema)
		if err != nil {
			return fmt.Errorf("error loading schema %s: %w", cfg.Schema, err)
		}
	}
	inputs, err := readInputs(args)
	if err != nil {
		return err
	}
	failed := 0
	for _, in := range inputs {
		if schema != nil {
			_, err = xmlfmt.Parse(in.data, false, parse.ParseSchema(schema))
		} else {
			// no explicit schema: validate against whatever the
			// document references, if anything
			_, err = xmlfmt.Parse(in.data, true)
		}
		if err != nil {
			failed++
			if _, werr := fmt.Fprintf(cc.Out, "%s: %v\n", in.name, err); werr != nil {
				return werr
			}
			continue
		}
		if _, werr := fmt.Fprintf(cc.Out, "%s: ok\n", in.name); werr != nil {
			return werr
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
