package grammar

import (
	"fmt"
	"sort"
)

type ll1TableKey struct {
	lhs       Symbol
	lookahead Symbol
}

// LL1Table is the predictive parsing table M[A, a]. Lookahead symbols are
// terminals or the end marker.
type LL1Table struct {
	entries map[ll1TableKey]*production
}

// Find returns the RHS of the production in cell M[nt, a]. The returned
// slice is empty for an ε-production. The second value reports whether the
// cell is defined.
func (t *LL1Table) Find(nt, a Symbol) ([]Symbol, bool) {
	prod, ok := t.entries[ll1TableKey{lhs: nt, lookahead: a}]
	if !ok {
		return nil, false
	}
	return prod.rhs, true
}

func (t *LL1Table) findProduction(nt, a Symbol) (*production, bool) {
	prod, ok := t.entries[ll1TableKey{lhs: nt, lookahead: a}]
	return prod, ok
}

// ll1Conflict records two productions demanded by the same table cell.
type ll1Conflict struct {
	lhs       Symbol
	lookahead Symbol
	prod1     *production
	prod2     *production
}

func (c *ll1Conflict) String() string {
	return fmt.Sprintf("conflict at M[%v, %v]: %v / %v", c.lhs, c.lookahead, c.prod1, c.prod2)
}

// LL1Table builds the predictive parsing table. It fails when the grammar
// is not LL(1), naming the conflicting cell and both productions.
func (g *Grammar) LL1Table() (*LL1Table, error) {
	tab, conflicts := genLL1Table(g, g.first, g.follow)
	if len(conflicts) > 0 {
		return nil, fmt.Errorf("grammar is not LL(1): %v", conflicts[0])
	}
	return tab, nil
}

func genLL1Table(gram *Grammar, fst *firstSet, flw *followSet) (*LL1Table, []*ll1Conflict) {
	tab := &LL1Table{
		entries: map[ll1TableKey]*production{},
	}
	var conflicts []*ll1Conflict

	insert := func(lhs, lookahead Symbol, prod *production) {
		key := ll1TableKey{lhs: lhs, lookahead: lookahead}
		if existing, ok := tab.entries[key]; ok {
			conflicts = append(conflicts, &ll1Conflict{
				lhs:       lhs,
				lookahead: lookahead,
				prod1:     existing,
				prod2:     prod,
			})
			return
		}
		tab.entries[key] = prod
	}

	for _, prod := range gram.prods.getAllProductions() {
		f, err := fst.find(prod, 0)
		if err != nil {
			continue
		}

		for _, sym := range sortedEntrySymbols(f.symbols) {
			insert(prod.lhs, sym, prod)
		}

		if f.empty {
			e, err := flw.find(prod.lhs)
			if err != nil {
				continue
			}
			for _, sym := range sortedEntrySymbols(e.symbols) {
				insert(prod.lhs, sym, prod)
			}
			if e.eof {
				insert(prod.lhs, SymbolEOF, prod)
			}
		}
	}

	return tab, conflicts
}

func sortedEntrySymbols(set map[Symbol]struct{}) []Symbol {
	syms := make([]Symbol, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}
