// Package driver recognizes input strings against the parsing tables built
// by the grammar package and hosts the four-way dispatch between the LL(1)
// and SLR(1) parsers.
package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/Youngermaster/Context-Free-Grammar-Parser/grammar"
)

const (
	promptText = "Select a parser (T: for LL(1), B: for SLR(1), Q: quit):"

	announceLL1     = "Grammar is LL(1)."
	announceSLR     = "Grammar is SLR(1)."
	announceNeither = "Grammar is neither LL(1) nor SLR(1)."
)

// Recognizer accepts or rejects a single input string.
type Recognizer interface {
	Recognize(input string) bool
}

// Driver owns the outcome of both table constructions and runs the
// recognition session on top of a command reader.
type Driver struct {
	ll1 *LL1Parser
	slr *SLRParser
	in  CommandReader
	out io.Writer
}

// New attempts both table constructions for gram. A construction failure is
// not an error here: it just records that the corresponding parser is
// unavailable.
func New(gram *grammar.Grammar, in CommandReader, out io.Writer) *Driver {
	d := &Driver{
		in:  in,
		out: out,
	}

	if p, err := NewLL1Parser(gram); err == nil {
		d.ll1 = p
	}
	if p, err := NewSLRParser(gram); err == nil {
		d.slr = p
	}

	return d
}

// IsLL1 reports whether the LL(1) construction succeeded.
func (d *Driver) IsLL1() bool {
	return d.ll1 != nil
}

// IsSLR1 reports whether the SLR(1) construction succeeded.
func (d *Driver) IsSLR1() bool {
	return d.slr != nil
}

// Run dispatches on the four cases: both parsers built, only one, or
// neither. Reaching the end of input anywhere after grammar construction is
// a clean termination.
func (d *Driver) Run() error {
	switch {
	case d.ll1 != nil && d.slr != nil:
		return d.runSelectionLoop()
	case d.ll1 != nil:
		fmt.Fprintln(d.out, announceLL1)
		d.recognizeStrings(d.ll1)
		return nil
	case d.slr != nil:
		fmt.Fprintln(d.out, announceSLR)
		d.recognizeStrings(d.slr)
		return nil
	default:
		fmt.Fprintln(d.out, announceNeither)
		return nil
	}
}

// runSelectionLoop prompts for a parser, runs a recognition block with the
// selected one, and re-prompts. Any unrecognized selection re-prompts
// without consuming strings. The end of input, during a selection or inside
// a recognition block, ends the loop without another prompt.
func (d *Driver) runSelectionLoop() error {
	for {
		fmt.Fprintln(d.out, promptText)

		choice, err := d.in.ReadCommand()
		if err != nil {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "T", "t":
			if err := d.recognizeStrings(d.ll1); err != nil {
				return nil
			}
		case "B", "b":
			if err := d.recognizeStrings(d.slr); err != nil {
				return nil
			}
		case "Q", "q":
			return nil
		}
	}
}

// recognizeStrings reads input strings one per line until a blank line or
// the end of input, answering yes or no for each in input order. It returns
// nil after a blank line and the reader's error (io.EOF at the end of input)
// otherwise, so callers can tell the two terminators apart.
func (d *Driver) recognizeStrings(r Recognizer) error {
	for {
		line, err := d.in.ReadCommand()
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}

		if r.Recognize(line) {
			fmt.Fprintln(d.out, "yes")
		} else {
			fmt.Fprintln(d.out, "no")
		}
	}
}
