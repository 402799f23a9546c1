package driver

import (
	"github.com/Youngermaster/Context-Free-Grammar-Parser/grammar"
)

// SLRParser is a stack-driven shift-reduce recognizer.
type SLRParser struct {
	ptab       *grammar.ParsingTable
	stateStack []int
}

// NewSLRParser builds the ACTION/GOTO tables for gram. It fails when the
// grammar is not SLR(1).
func NewSLRParser(gram *grammar.Grammar) (*SLRParser, error) {
	ptab, err := gram.SLRTable()
	if err != nil {
		return nil, err
	}

	return &SLRParser{
		ptab: ptab,
	}, nil
}

// Recognize reports whether input belongs to the grammar's language. The
// state stack is rebuilt on every call, so recognitions are independent.
func (p *SLRParser) Recognize(input string) bool {
	syms := symbolizeInput(input)

	p.stateStack = p.stateStack[:0]
	p.push(p.ptab.InitialState)
	cursor := 0

	for {
		sym := syms[cursor]

		// A literal '$' symbolizes to the end marker but is not the end of
		// the input; no entry may fire on it.
		if sym.IsEndMarker() && cursor != len(syms)-1 {
			return false
		}

		act := p.ptab.Action[p.top()*p.ptab.TerminalCount+sym.Num()]
		switch {
		case act < 0: // Shift
			p.push(act * -1)
			cursor++
		case act > 0: // Reduce
			if act == p.ptab.StartProduction {
				return true
			}

			lhs := p.ptab.LHSSymbols[act]
			n := p.ptab.AlternativeSymbolCounts[act]
			p.pop(n)
			next := p.ptab.GoTo[p.top()*p.ptab.NonTerminalCount+lhs]
			if next == 0 {
				return false
			}
			p.push(next)
		default: // Error
			return false
		}
	}
}

func (p *SLRParser) top() int {
	return p.stateStack[len(p.stateStack)-1]
}

func (p *SLRParser) push(state int) {
	p.stateStack = append(p.stateStack, state)
}

func (p *SLRParser) pop(n int) {
	p.stateStack = p.stateStack[:len(p.stateStack)-n]
}
