package main

import (
	"fmt"
	"io"
	"os"
)

type input struct {
	name string
	data []byte
}

// readInputs resolves file arguments, with "-" meaning stdin.  No
// arguments at all also means stdin.
func readInputs(args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]input, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			d, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("error reading stdin: %w", err)
			}
			res = append(res, input{name: "<stdin>", data: d})
			continue
		}
		d, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", arg, err)
		}
		res = append(res, input{name: arg, data: d})
	}
	return res, nil
}
