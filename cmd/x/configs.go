package main

import (
	"io"
	"os"

	"github.com/signadot/xml-format/go-xml/encode"
	"github.com/signadot/xml-format/go-xml/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	C     bool `cli:"name=c aliases=compact desc='write output without indentation'"`
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// setOutput redirects command output to a file; "-" keeps stdout.
func (cfg *MainConfig) setOutput(cc *cli.Context, path string) (any, error) {
	cfg.Out = path
	if path == "-" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) closeOutput() {
	if cfg.CloseOut != nil {
		cfg.CloseOut()
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(!cfg.C),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	W bool `cli:"name=w desc='rewrite input files in place'"`
	D bool `cli:"name=d desc='display diffs instead of rewriting files'"`

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Comments bool `cli:"name=comments desc='include comments'"`

	View *cli.Command
}

func (cfg *ViewConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseKeepComments(cfg.Comments)}
}

type LintConfig struct {
	*MainConfig

	Schema string `cli:"name=schema desc='XSD schema file to validate against'"`

	Lint *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
