// Package spec reads grammar definitions.
//
// A definition is a sequence of lines: the first line holds the number of
// production lines n, and each of the next n lines has the shape
//
//	X -> alt1 alt2 ... altk
//
// where X is a single uppercase letter, the separator is the literal
// four-character sequence " -> ", and the alternatives are non-empty runs of
// non-space characters separated by runs of spaces. Each alternative becomes
// one production.
package spec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	verr "github.com/Youngermaster/Context-Free-Grammar-Parser/error"
)

const separator = " -> "

// Rule is one production line of a grammar definition.
type Rule struct {
	LHS          byte
	Alternatives []string
	Row          int
}

// RuleSet is the parsed form of a grammar definition.
type RuleSet struct {
	Rules []*Rule
}

// Parse reads a grammar definition from r. It consumes exactly the header
// line and the n production lines it announces. When r is a *bufio.Reader,
// Parse reads through it directly and anything after those lines stays
// buffered in r for the caller; any other reader is wrapped in a new
// bufio.Reader, whose read-ahead is lost when Parse returns.
func Parse(r io.Reader) (*RuleSet, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil {
		return nil, &verr.LineError{
			Cause: fmt.Errorf("empty grammar definition"),
			Row:   1,
		}
	}

	n, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || n <= 0 {
		return nil, &verr.LineError{
			Cause: fmt.Errorf("the first line must be a positive production count; line: %q", header),
			Row:   1,
		}
	}

	root := &RuleSet{}
	for i := 0; i < n; i++ {
		row := i + 2

		line, err := readLine(br)
		if err != nil {
			return nil, &verr.LineError{
				Cause: fmt.Errorf("expected %v production lines, got %v", n, i),
				Row:   row,
			}
		}

		rule, err := parseRule(line, row)
		if err != nil {
			return nil, err
		}
		root.Rules = append(root.Rules, rule)
	}

	return root, nil
}

func parseRule(line string, row int) (*Rule, error) {
	parts := strings.Split(line, separator)
	if len(parts) != 2 {
		return nil, &verr.LineError{
			Cause: fmt.Errorf("a production line must contain exactly one %q separator; line: %q", separator, line),
			Row:   row,
		}
	}

	// The LHS is the single uppercase letter immediately before the
	// separator; any extra spacing or tabs around it make the line
	// malformed.
	lhs := parts[0]
	if len(lhs) != 1 || lhs[0] < 'A' || lhs[0] > 'Z' {
		return nil, &verr.LineError{
			Cause: fmt.Errorf("the left-hand side must be a single uppercase letter; got: %q", lhs),
			Row:   row,
		}
	}

	return &Rule{
		LHS:          lhs[0],
		Alternatives: strings.Fields(parts[1]),
		Row:          row,
	}, nil
}

// readLine returns the next line without its trailing newline. A final line
// that ends at EOF without a newline still counts.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
