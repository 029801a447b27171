package main

import (
	"fmt"

	"github.com/signadot/xml-format/go-xml/encode"
	"github.com/signadot/xml-format/go-xml/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	inputs, err := readInputs(args)
	if err != nil {
		return err
	}
	encOpts := append(cfg.encOpts(cc.Out), encode.EncodeDecl(true))
	for _, in := range inputs {
		root, err := parse.Parse(in.data, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", in.name, err)
		}
		if err := encode.Encode(root, cc.Out, encOpts...); err != nil {
			return err
		}
	}
	return nil
}
