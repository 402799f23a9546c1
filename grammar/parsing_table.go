package grammar

import (
	"fmt"
	"sort"
)

// actionEntry encodes one ACTION cell: 0 is the error entry, a negative
// value is a shift to state -entry, and a positive value is a reduce by
// production number entry. The initial state is never a shift target, so
// the encoding is unambiguous. Accept is the reduce by the augmented start
// production, which only ever lands in the end-marker column.
const actionEntryEmpty = 0

// goToEntry encodes one GOTO cell: 0 is the error entry, any other value is
// the next state. The initial state is never a goto target.
const goToEntryEmpty = 0

type conflict interface {
	conflict()
}

type shiftReduceConflict struct {
	state     stateNum
	sym       Symbol
	nextState stateNum
	prodNum   productionNum
}

func (c *shiftReduceConflict) conflict() {
}

type reduceReduceConflict struct {
	state    stateNum
	sym      Symbol
	prodNum1 productionNum
	prodNum2 productionNum
}

func (c *reduceReduceConflict) conflict() {
}

var (
	_ conflict = &shiftReduceConflict{}
	_ conflict = &reduceReduceConflict{}
)

// ParsingTable is the SLR(1) driver table set. ACTION is indexed by
// state*TerminalCount+column where the column is the raw character of the
// lookahead ('$' is the end marker's column); GOTO is indexed by
// state*NonTerminalCount+column where the column is the non-terminal's
// letter index.
type ParsingTable struct {
	Action []int
	GoTo   []int

	StateCount       int
	TerminalCount    int
	NonTerminalCount int

	// LHSSymbols and AlternativeSymbolCounts are indexed by production
	// number: the GOTO column of a production's LHS and the number of
	// states a reduce by it pops (0 for an ε-production).
	LHSSymbols              []int
	AlternativeSymbolCounts []int

	StartProduction int
	InitialState    int
}

func (t *ParsingTable) writeShiftAction(state stateNum, sym Symbol, nextState stateNum) conflict {
	pos := state.Int()*t.TerminalCount + sym.Num()
	act := t.Action[pos]
	if act != actionEntryEmpty && act > 0 {
		return &shiftReduceConflict{
			state:     state,
			sym:       sym,
			nextState: nextState,
			prodNum:   productionNum(act),
		}
	}
	t.Action[pos] = nextState.Int() * -1

	return nil
}

func (t *ParsingTable) writeReduceAction(state stateNum, sym Symbol, prod productionNum) conflict {
	pos := state.Int()*t.TerminalCount + sym.Num()
	act := t.Action[pos]
	if act != actionEntryEmpty {
		if act > 0 {
			if productionNum(act) == prod {
				return nil
			}
			return &reduceReduceConflict{
				state:    state,
				sym:      sym,
				prodNum1: productionNum(act),
				prodNum2: prod,
			}
		}
		return &shiftReduceConflict{
			state:     state,
			sym:       sym,
			nextState: stateNum(act * -1),
			prodNum:   prod,
		}
	}
	t.Action[pos] = prod.Int()

	return nil
}

func (t *ParsingTable) writeGoTo(state stateNum, sym Symbol, nextState stateNum) {
	pos := state.Int()*t.NonTerminalCount + sym.ntNum()
	t.GoTo[pos] = nextState.Int()
}

type slrTableBuilder struct {
	automaton *lr0Automaton
	prods     *productionSet
	startProd *production
	follow    *followSet

	conflicts []conflict
}

func (b *slrTableBuilder) build() (*ParsingTable, error) {
	var ptab *ParsingTable
	{
		numProds := b.prods.maxNum().Int() + 1
		lhsSymbols := make([]int, numProds)
		altSymCounts := make([]int, numProds)
		for _, prod := range b.prods.getAllProductions() {
			lhsSymbols[prod.num.Int()] = prod.lhs.ntNum()
			altSymCounts[prod.num.Int()] = prod.rhsLen
		}
		lhsSymbols[b.startProd.num.Int()] = b.startProd.lhs.ntNum()
		altSymCounts[b.startProd.num.Int()] = b.startProd.rhsLen

		ptab = &ParsingTable{
			Action:                  make([]int, len(b.automaton.states)*numTerminals),
			GoTo:                    make([]int, len(b.automaton.states)*numNonTerminals),
			StateCount:              len(b.automaton.states),
			TerminalCount:           numTerminals,
			NonTerminalCount:        numNonTerminals,
			LHSSymbols:              lhsSymbols,
			AlternativeSymbolCounts: altSymCounts,
			StartProduction:         b.startProd.num.Int(),
			InitialState:            b.automaton.states[b.automaton.initialState].num.Int(),
		}
	}

	var conflicts []conflict
	for _, state := range b.automaton.ordered {
		for _, sym := range sortedNextSymbols(state.next) {
			nextState := b.automaton.states[state.next[sym]]
			if sym.IsNonTerminal() {
				ptab.writeGoTo(state.num, sym, nextState.num)
				continue
			}

			c := ptab.writeShiftAction(state.num, sym, nextState.num)
			if c != nil {
				conflicts = append(conflicts, c)
			}
		}

		for _, prod := range b.reducibleProductions(state) {
			if prod.lhs.isStart() {
				// S' → S・accepts on the end marker alone.
				c := ptab.writeReduceAction(state.num, SymbolEOF, prod.num)
				if c != nil {
					conflicts = append(conflicts, c)
				}
				continue
			}

			flw, err := b.follow.find(prod.lhs)
			if err != nil {
				return nil, err
			}
			for _, sym := range sortedEntrySymbols(flw.symbols) {
				c := ptab.writeReduceAction(state.num, sym, prod.num)
				if c != nil {
					conflicts = append(conflicts, c)
				}
			}
			if flw.eof {
				c := ptab.writeReduceAction(state.num, SymbolEOF, prod.num)
				if c != nil {
					conflicts = append(conflicts, c)
				}
			}
		}
	}

	b.conflicts = conflicts

	if len(conflicts) > 0 {
		return nil, fmt.Errorf("grammar is not SLR(1): %v", b.describeConflict(conflicts[0]))
	}

	return ptab, nil
}

// reducibleProductions returns the reducible productions of a state in
// production-number order.
func (b *slrTableBuilder) reducibleProductions(state *lr0State) []*production {
	prods := make([]*production, 0, len(state.reducible))
	for id := range state.reducible {
		if prod, ok := findProduction(b.prods, b.startProd, id); ok {
			prods = append(prods, prod)
		}
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].num < prods[j].num
	})
	return prods
}

func (b *slrTableBuilder) productionByNum(num productionNum) *production {
	if b.startProd.num == num {
		return b.startProd
	}
	for _, prod := range b.prods.getAllProductions() {
		if prod.num == num {
			return prod
		}
	}
	return nil
}

func (b *slrTableBuilder) describeConflict(con conflict) string {
	switch c := con.(type) {
	case *shiftReduceConflict:
		return fmt.Sprintf("shift/reduce conflict at state %v on %v: shift %v / reduce %v",
			c.state, c.sym, c.nextState, b.productionByNum(c.prodNum))
	case *reduceReduceConflict:
		return fmt.Sprintf("reduce/reduce conflict at state %v on %v: reduce %v / reduce %v",
			c.state, c.sym, b.productionByNum(c.prodNum1), b.productionByNum(c.prodNum2))
	default:
		return "unknown conflict"
	}
}

func sortedNextSymbols(next map[Symbol]kernelID) []Symbol {
	syms := make([]Symbol, 0, len(next))
	for sym := range next {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// SLRTable builds the SLR(1) ACTION/GOTO tables. It fails when the grammar
// is not SLR(1), naming the state, the symbol, and the offending
// productions of the first conflict.
func (g *Grammar) SLRTable() (*ParsingTable, error) {
	ptab, _, err := g.genSLRTable()
	return ptab, err
}

// genSLRTable augments the grammar, builds the LR(0) automaton, and
// synthesizes the tables. The builder is returned so callers can inspect
// the automaton and the collected conflicts.
func (g *Grammar) genSLRTable() (*ParsingTable, *slrTableBuilder, error) {
	startProd, err := newProduction(symbolStart, []Symbol{g.start})
	if err != nil {
		return nil, nil, err
	}
	startProd.num = productionNumStart

	automaton, err := genLR0Automaton(g.prods, startProd)
	if err != nil {
		return nil, nil, err
	}

	b := &slrTableBuilder{
		automaton: automaton,
		prods:     g.prods,
		startProd: startProd,
		follow:    g.follow,
	}
	ptab, err := b.build()
	if err != nil {
		return nil, b, err
	}
	return ptab, b, nil
}
