package grammar

import "fmt"

// followEntry is the FOLLOW set of a non-terminal. Membership of the end
// marker is tracked by the eof flag; ε can never be a member.
type followEntry struct {
	symbols map[Symbol]struct{}
	eof     bool
}

func newFollowEntry() *followEntry {
	return &followEntry{
		symbols: map[Symbol]struct{}{},
		eof:     false,
	}
}

func (e *followEntry) add(sym Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *followEntry) addEOF() bool {
	if !e.eof {
		e.eof = true
		return true
	}
	return false
}

// merge adds the non-ε symbols of fst and the whole of flw to the entry.
// Either argument may be nil.
func (e *followEntry) merge(fst *firstEntry, flw *followEntry) bool {
	changed := false

	if fst != nil {
		for sym := range fst.symbols {
			if e.add(sym) {
				changed = true
			}
		}
	}

	if flw != nil {
		for sym := range flw.symbols {
			if e.add(sym) {
				changed = true
			}
		}
		if flw.eof {
			if e.addEOF() {
				changed = true
			}
		}
	}

	return changed
}

type followSet struct {
	set map[Symbol]*followEntry
}

func newFollowSet(gram *Grammar) *followSet {
	flw := &followSet{
		set: map[Symbol]*followEntry{},
	}
	for _, sym := range gram.nonTerminals {
		flw.set[sym] = newFollowEntry()
	}
	return flw
}

func (flw *followSet) find(sym Symbol) (*followEntry, error) {
	e, ok := flw.set[sym]
	if !ok {
		return nil, fmt.Errorf("an entry of FOLLOW was not found; symbol: %v", sym)
	}
	return e, nil
}

// genFollowSet computes FOLLOW for every non-terminal by fixed-point
// iteration over the finalized FIRST set. The end marker is seeded into
// FOLLOW of the start symbol before the first pass.
func genFollowSet(gram *Grammar, fst *firstSet) (*followSet, error) {
	flw := newFollowSet(gram)

	if e, err := flw.find(gram.start); err == nil {
		e.addEOF()
	}

	for {
		more := false
		for _, prod := range gram.prods.getAllProductions() {
			for i, sym := range prod.rhs {
				if !sym.IsNonTerminal() {
					continue
				}

				e, err := flw.find(sym)
				if err != nil {
					return nil, err
				}

				rest, err := fst.find(prod, i+1)
				if err != nil {
					return nil, err
				}
				if e.merge(rest, nil) {
					more = true
				}

				if rest.empty {
					lhsFlw, err := flw.find(prod.lhs)
					if err != nil {
						return nil, err
					}
					if e.merge(nil, lhsFlw) {
						more = true
					}
				}
			}
		}
		if !more {
			break
		}
	}

	return flw, nil
}
