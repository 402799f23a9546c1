package grammar

import (
	"testing"
)

func genAutomaton(t *testing.T, src string) (*lr0Automaton, *production) {
	t.Helper()

	gram := genGrammar(t, src)
	startProd, err := newProduction(symbolStart, []Symbol{gram.start})
	if err != nil {
		t.Fatal(err)
	}
	startProd.num = productionNumStart

	automaton, err := genLR0Automaton(gram.prods, startProd)
	if err != nil {
		t.Fatal(err)
	}
	return automaton, startProd
}

func TestGenLR0Automaton(t *testing.T) {
	automaton, startProd := genAutomaton(t, `
3
S -> S+T T
T -> T*F F
F -> (S) i
`)

	// The canonical collection of the expression grammar.
	if len(automaton.states) != 12 {
		t.Fatalf("state count is mismatched\nwant: %v\ngot: %v", 12, len(automaton.states))
	}
	if len(automaton.ordered) != len(automaton.states) {
		t.Fatalf("the ordered state list must cover every state")
	}

	initial := automaton.states[automaton.initialState]
	if initial.num != stateNumInitial {
		t.Fatalf("the initial state must be state 0; got: %v", initial.num)
	}

	// Closure of { S' →・S }: the kernel item plus every production of S,
	// T, and F with the dot at 0.
	if len(initial.items) != 7 {
		t.Fatalf("item count of the initial state is mismatched\nwant: %v\ngot: %v", 7, len(initial.items))
	}

	for _, c := range []byte{'S', 'T', 'F', '(', 'i'} {
		if _, ok := initial.next[SymbolFromChar(c)]; !ok {
			t.Errorf("the initial state must have a transition on %v", string(c))
		}
	}
	if len(initial.next) != 5 {
		t.Errorf("transition count of the initial state is mismatched\nwant: %v\ngot: %v", 5, len(initial.next))
	}

	// The state reached on S holds S' → S・and S → S・+T.
	acceptState := automaton.states[initial.next[SymbolFromChar('S')]]
	var sawInitialReduce bool
	for id := range acceptState.reducible {
		if id == startProd.id {
			sawInitialReduce = true
		}
	}
	if !sawInitialReduce {
		t.Errorf("the state reached on S must reduce by the augmented production")
	}
}

func TestGenLR0AutomatonEpsilonProduction(t *testing.T) {
	automaton, _ := genAutomaton(t, `
1
S -> aS e
`)

	// s0 = { S'→・S, S→・aS, S→・}, s1 = { S'→S・}, s2 = goto(s0, a),
	// s3 = { S→aS・}. goto(s2, a) folds back into s2.
	if len(automaton.states) != 4 {
		t.Fatalf("state count is mismatched\nwant: %v\ngot: %v", 4, len(automaton.states))
	}

	initial := automaton.states[automaton.initialState]

	// The ε-production is reducible already in the initial state.
	if len(initial.reducible) != 1 {
		t.Fatalf("the initial state must have exactly one reducible production; got: %v", len(initial.reducible))
	}

	aState := automaton.states[initial.next[SymbolFromChar('a')]]
	if aState.next[SymbolFromChar('a')] != aState.id {
		t.Errorf("goto on a must fold back into the same state")
	}
}

func TestNewLR0Item(t *testing.T) {
	gram := genGrammar(t, `
1
S -> aS e
`)

	sProds, _ := gram.prods.findByLHS(SymbolFromChar('S'))

	item, err := newLR0Item(sProds[0], 0)
	if err != nil {
		t.Fatal(err)
	}
	if item.dottedSymbol != SymbolFromChar('a') || item.reducible {
		t.Errorf("invalid item: dotted symbol: %v, reducible: %v", item.dottedSymbol, item.reducible)
	}

	item, err = newLR0Item(sProds[0], 2)
	if err != nil {
		t.Fatal(err)
	}
	if !item.reducible || !item.dottedSymbol.IsNil() {
		t.Errorf("an item with the dot past the end must be reducible")
	}

	// The only item of an ε-production is already reducible.
	item, err = newLR0Item(sProds[1], 0)
	if err != nil {
		t.Fatal(err)
	}
	if !item.reducible {
		t.Errorf("the item of an ε-production must be reducible at dot 0")
	}
	if _, err := newLR0Item(sProds[1], 1); err == nil {
		t.Errorf("the dot of an ε-production item must not exceed 0")
	}
}
