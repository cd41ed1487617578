// Binary render_template substitutes {{KEY}} placeholders
// in a text file with literal string values, optionally
// sourced from auxiliary files or pairs files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/altendky/mujou/pairs"
	"github.com/altendky/mujou/render"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func usage() {
	fmt.Fprintf(
		os.Stderr,
		"Usage: %s [flags] INPUT OUTPUT"+
			" [KEY=value | KEY=@path] ...\n",
		os.Args[0],
	)
	flag.PrintDefaults()
}

func run() error {
	const errCtx = "render_template"

	var pairsFiles arrayFlags

	var (
		startTag string
		endTag   string
	)

	flag.Var(
		&pairsFiles,
		"pairs-file",
		"JSON or YAML replacement mapping file (repeatable)",
	)

	flag.StringVar(
		&startTag, "start-tag", "{{",
		"Start tag for template placeholders",
	)

	flag.StringVar(
		&endTag, "end-tag", "}}",
		"End tag for template placeholders",
	)

	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()

		return fmt.Errorf(
			"%s: INPUT and OUTPUT are required",
			errCtx,
		)
	}

	reps := make(map[string]string)

	// Pairs files form the base mapping; command-line
	// pairs override them.
	for _, pf := range pairsFiles {
		loaded, err := pairs.LoadFile(pf)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		pairs.Merge(reps, loaded)
	}

	parsed, err := pairs.Parse(args[2:])
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	pairs.Merge(reps, parsed)

	re := render.Renderer{
		StartTag: startTag,
		EndTag:   endTag,
	}

	if err := re.RenderFile(args[0], args[1], reps); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
