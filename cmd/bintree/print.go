package main

import (
	"fmt"

	"github.com/KilimcininKorOglu/bintree/internal/render"
)

// printCmd handles the print command.
func printCmd(args []string) int {
	f := newTreeFlags("print")
	horizontal := f.fs.Bool("horizontal", false, "Draw the root on the left")
	if help, err := f.parse(args); err != nil {
		return 1
	} else if help {
		printPrintUsage(stdout)
		return 0
	}

	s, ok := f.open()
	if !ok {
		return 1
	}
	defer s.logger.Close()

	opts := render.Options{
		Horizontal: s.cfg.Render.Horizontal,
		NullMarker: s.cfg.Render.NullMarker,
	}
	if f.isSet("horizontal") {
		opts.Horizontal = *horizontal
	}

	fmt.Fprintln(stdout, render.Sprint(s.tree, opts))
	return 0
}
