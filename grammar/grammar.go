// Package grammar builds LL(1) and SLR(1) parsing tables from a context-free
// grammar whose symbols are single characters.
package grammar

import (
	"fmt"
	"sort"

	"github.com/Youngermaster/Context-Free-Grammar-Parser/spec"
)

// startChar is the start symbol of every grammar this tool accepts.
const startChar = 'S'

type Grammar struct {
	prods        *productionSet
	start        Symbol
	terminals    []Symbol
	nonTerminals []Symbol
	first        *firstSet
	follow       *followSet
}

type GrammarBuilder struct {
	AST *spec.RuleSet
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	prods := newProductionSet()
	ntSet := map[Symbol]struct{}{}
	termSet := map[Symbol]struct{}{}

	for _, rule := range b.AST.Rules {
		lhs := SymbolFromChar(rule.LHS)
		ntSet[lhs] = struct{}{}

		for _, alt := range rule.Alternatives {
			rhs := make([]Symbol, 0, len(alt))
			for i := 0; i < len(alt); i++ {
				sym := SymbolFromChar(alt[i])
				rhs = append(rhs, sym)
				switch {
				case sym.IsTerminal():
					termSet[sym] = struct{}{}
				case sym.IsNonTerminal():
					ntSet[sym] = struct{}{}
				}
			}

			prod, err := newProduction(lhs, rhs)
			if err != nil {
				return nil, err
			}
			prods.append(prod)
		}
	}

	if len(prods.getAllProductions()) == 0 {
		return nil, fmt.Errorf("a grammar must have at least one production")
	}

	gram := &Grammar{
		prods:        prods,
		start:        SymbolFromChar(startChar),
		terminals:    sortSymbols(termSet),
		nonTerminals: sortSymbols(ntSet),
	}

	fst, err := genFirstSet(gram)
	if err != nil {
		return nil, err
	}
	gram.first = fst

	flw, err := genFollowSet(gram, fst)
	if err != nil {
		return nil, err
	}
	gram.follow = flw

	return gram, nil
}

func sortSymbols(set map[Symbol]struct{}) []Symbol {
	syms := make([]Symbol, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Terminals returns the terminal symbols in their defined order.
func (g *Grammar) Terminals() []Symbol {
	return g.terminals
}

// NonTerminals returns the non-terminal symbols in their defined order.
func (g *Grammar) NonTerminals() []Symbol {
	return g.nonTerminals
}
