package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printer writes one line per token: the canonical form of an accepted token
// or the message of a rejected one, red unless colours are disabled.
type printer struct {
	out      io.Writer
	quiet    bool
	rejected *color.Color
}

func newPrinter(out io.Writer, noColor, quiet bool) *printer {
	rejected := color.New(color.FgRed, color.Bold)
	if noColor {
		rejected.DisableColor()
	}

	return &printer{
		out:      out,
		quiet:    quiet,
		rejected: rejected,
	}
}

func (p *printer) success(text string) {
	if p.quiet {
		return
	}

	fmt.Fprintln(p.out, text)
}

func (p *printer) failure(err error) {
	p.rejected.Fprintln(p.out, err.Error())
}
