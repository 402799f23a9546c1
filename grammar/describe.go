package grammar

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteDescription prints a report of the grammar analysis: FIRST and
// FOLLOW sets, the LL(1) table or its conflicts, and the LR(0) automaton
// with the disposition of every state.
func (g *Grammar) WriteDescription(w io.Writer) error {
	fmt.Fprintf(w, "# Productions\n\n")
	for _, prod := range g.prods.getAllProductions() {
		fmt.Fprintf(w, "%4v %v\n", prod.num, prod)
	}

	fmt.Fprintf(w, "\n# FIRST\n\n")
	for _, sym := range g.nonTerminals {
		e := g.first.findBySymbol(sym)
		if e == nil {
			continue
		}
		fmt.Fprintf(w, "FIRST(%v) = %v\n", sym, formatFirstEntry(e))
	}

	fmt.Fprintf(w, "\n# FOLLOW\n\n")
	for _, sym := range g.nonTerminals {
		e, err := g.follow.find(sym)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "FOLLOW(%v) = %v\n", sym, formatFollowEntry(e))
	}

	fmt.Fprintf(w, "\n# LL(1) table\n\n")
	g.writeLL1Description(w)

	fmt.Fprintf(w, "\n# LR(0) automaton\n\n")
	return g.writeSLRDescription(w)
}

func (g *Grammar) writeLL1Description(w io.Writer) {
	tab, conflicts := genLL1Table(g, g.first, g.follow)
	if len(conflicts) > 0 {
		fmt.Fprintf(w, "%v conflicts:\n\n", len(conflicts))
		for _, c := range conflicts {
			fmt.Fprintf(w, "    %v\n", c)
		}
		return
	}

	keys := make([]ll1TableKey, 0, len(tab.entries))
	for key := range tab.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].lhs != keys[j].lhs {
			return keys[i].lhs < keys[j].lhs
		}
		return keys[i].lookahead < keys[j].lookahead
	})
	for _, key := range keys {
		fmt.Fprintf(w, "M[%v, %v] = %v\n", key.lhs, key.lookahead, tab.entries[key])
	}
}

func (g *Grammar) writeSLRDescription(w io.Writer) error {
	_, b, buildErr := g.genSLRTable()
	if b == nil {
		return buildErr
	}

	fmt.Fprintf(w, "%v states:\n", len(b.automaton.ordered))

	for _, state := range b.automaton.ordered {
		fmt.Fprintf(w, "\nstate %v\n", state.num)

		// Kernel items are kept in hash order internally; reports list
		// items by production number and dot so the output is stable.
		items := make([]describedItem, 0, len(state.items))
		for _, item := range state.items {
			prod, ok := findProduction(b.prods, b.startProd, item.prod)
			if !ok {
				fmt.Fprintf(w, "    <production not found>\n")
				continue
			}
			items = append(items, describedItem{item: item, prod: prod})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].prod.num != items[j].prod.num {
				return items[i].prod.num < items[j].prod.num
			}
			return items[i].item.dot < items[j].item.dot
		})
		for _, di := range items {
			fmt.Fprintf(w, "    %v\n", productionToString(di.prod, di.item.dot))
		}

		var recs []string
		for _, sym := range sortedNextSymbols(state.next) {
			nextState := b.automaton.states[state.next[sym]]
			if sym.IsNonTerminal() {
				recs = append(recs, fmt.Sprintf("goto   %4v on %v", nextState.num, sym))
			} else {
				recs = append(recs, fmt.Sprintf("shift  %4v on %v", nextState.num, sym))
			}
		}
		for _, prod := range b.reducibleProductions(state) {
			if prod.lhs.isStart() {
				recs = append(recs, "accept on $")
				continue
			}
			flw, err := b.follow.find(prod.lhs)
			if err != nil {
				return err
			}
			for _, sym := range sortedEntrySymbols(flw.symbols) {
				recs = append(recs, fmt.Sprintf("reduce %4v on %v", prod.num, sym))
			}
			if flw.eof {
				recs = append(recs, fmt.Sprintf("reduce %4v on $", prod.num))
			}
		}

		if len(recs) > 0 {
			fmt.Fprintf(w, "\n")
			for _, rec := range recs {
				fmt.Fprintf(w, "    %v\n", rec)
			}
		}
	}

	fmt.Fprintf(w, "\n# Conflicts\n\n")
	if len(b.conflicts) > 0 {
		fmt.Fprintf(w, "%v conflicts:\n\n", len(b.conflicts))
		for _, c := range b.conflicts {
			fmt.Fprintf(w, "    %v\n", b.describeConflict(c))
		}
	} else {
		fmt.Fprintf(w, "no conflicts\n")
	}

	return nil
}

type describedItem struct {
	item *lr0Item
	prod *production
}

func productionToString(prod *production, dot int) string {
	var w strings.Builder
	fmt.Fprintf(&w, "%v →", prod.lhs)
	for n, sym := range prod.rhs {
		if n == dot {
			fmt.Fprintf(&w, " ・")
		}
		fmt.Fprintf(&w, " %v", sym)
	}
	if dot == prod.rhsLen {
		fmt.Fprintf(&w, " ・")
	}
	return w.String()
}

func formatFirstEntry(e *firstEntry) string {
	syms := sortedEntrySymbols(e.symbols)
	var parts []string
	if e.empty {
		parts = append(parts, SymbolEpsilon.String())
	}
	for _, sym := range syms {
		parts = append(parts, sym.String())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func formatFollowEntry(e *followEntry) string {
	syms := sortedEntrySymbols(e.symbols)
	var parts []string
	for _, sym := range syms {
		parts = append(parts, sym.String())
	}
	if e.eof {
		parts = append(parts, SymbolEOF.String())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
