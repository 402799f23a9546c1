package driver

import (
	"github.com/Youngermaster/Context-Free-Grammar-Parser/grammar"
)

// LL1Parser is a stack-driven predictive recognizer.
type LL1Parser struct {
	gram  *grammar.Grammar
	table *grammar.LL1Table
}

// NewLL1Parser builds the predictive table for gram. It fails when the
// grammar is not LL(1).
func NewLL1Parser(gram *grammar.Grammar) (*LL1Parser, error) {
	table, err := gram.LL1Table()
	if err != nil {
		return nil, err
	}

	return &LL1Parser{
		gram:  gram,
		table: table,
	}, nil
}

// Recognize reports whether input belongs to the grammar's language.
func (p *LL1Parser) Recognize(input string) bool {
	syms := symbolizeInput(input)

	stack := []grammar.Symbol{grammar.SymbolEOF, p.gram.Start()}
	cursor := 0

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		a := grammar.SymbolEOF
		if cursor < len(syms) {
			a = syms[cursor]
		}

		if top == a {
			stack = stack[:len(stack)-1]
			cursor++
			continue
		}

		if top.IsNonTerminal() {
			rhs, ok := p.table.Find(top, a)
			if !ok {
				return false
			}
			stack = stack[:len(stack)-1]
			for i := len(rhs) - 1; i >= 0; i-- {
				stack = append(stack, rhs[i])
			}
			continue
		}

		// The top is a terminal or the end marker and does not match the
		// input head.
		return false
	}

	// The end marker appended to the input must be the last symbol
	// consumed; a literal '$' inside the input empties the stack early.
	return cursor == len(syms)
}

// symbolizeInput applies the character-to-symbol convention to every byte
// of input and appends the end marker.
func symbolizeInput(input string) []grammar.Symbol {
	syms := make([]grammar.Symbol, 0, len(input)+1)
	for i := 0; i < len(input); i++ {
		syms = append(syms, grammar.SymbolFromChar(input[i]))
	}
	return append(syms, grammar.SymbolEOF)
}
