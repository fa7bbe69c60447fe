package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// Printer writes command output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Plainf prints a formatted line.
func (p *Printer) Plainf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// PrintJSON prints v as indented JSON.
func (p *Printer) PrintJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintResult prints r in the text format.
func (p *Printer) PrintResult(r *Result) {
	if r.Passed {
		p.Plainf("Validation passed")
	} else {
		p.Plainf("Validation failed")
		for _, f := range r.Fields {
			p.Plainf("%s:", f.Field)
			for _, msg := range f.Messages {
				p.Plainf("  - %s", msg)
			}
		}
	}

	if len(r.Debug) > 0 {
		p.Plainf("Diagnostics:")
		for _, msg := range r.Debug {
			p.Plainf("  - %s", msg)
		}
	}
}
