/*
File    : skai/cmd/skai/main.go
Package : main
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/skai/environment"
	"github.com/akashmaji946/skai/eval"
	"github.com/akashmaji946/skai/interp"
	"github.com/akashmaji946/skai/lexer"
	"github.com/akashmaji946/skai/parser"
	"github.com/akashmaji946/skai/std"
)

var errColor = color.New(color.FgRed)

func main() {
	var evalSource string

	root := &cobra.Command{
		Use:           "skai [path]",
		Short:         "Run a skai source file",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if evalSource != "" {
				return run("argv", evalSource)
			}
			if len(args) == 0 {
				return fmt.Errorf("expected a file path, or -e <source>")
			}
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return run(args[0], string(src))
		},
	}
	root.Flags().StringVarP(&evalSource, "eval", "e", "", "run the given source text directly")

	if err := root.Execute(); err != nil {
		errColor.Println(err.Error())
		os.Exit(1)
	}
}

// run lexes, parses, and evaluates one source file under file. Every
// failure in the core funnels through *interp.Error via panic; this
// is the one place that recovers and turns it into a printed line and
// a nonzero exit.
func run(file, src string) (reterr error) {
	defer func() {
		if r := recover(); r != nil {
			if ierr, ok := r.(*interp.Error); ok {
				errColor.Println(ierr.Error())
				os.Exit(1)
			}
			panic(r)
		}
	}()

	l := lexer.New(file, src)
	program := parser.Parse(l)

	global := environment.New()
	std.Register(global)
	ev := eval.New(global)
	ev.Run(program)
	return nil
}
