package grammar

import (
	"fmt"
	"sort"
)

type lr0Automaton struct {
	initialState kernelID
	states       map[kernelID]*lr0State

	// ordered holds the states in state-number order.
	ordered []*lr0State
}

// genLR0Automaton builds the canonical LR(0) collection. startProd is the
// augmented production S' → S; it lives outside prods so that FIRST and
// FOLLOW never see it.
func genLR0Automaton(prods *productionSet, startProd *production) (*lr0Automaton, error) {
	if !startProd.lhs.isStart() {
		return nil, fmt.Errorf("the LHS of the start production must be the augmented start symbol")
	}

	automaton := &lr0Automaton{
		states: map[kernelID]*lr0State{},
	}

	currentState := stateNumInitial
	knownKernels := map[kernelID]struct{}{}
	uncheckedKernels := []*kernel{}

	// Generate the initial kernel, closure of { S' →・S }.
	{
		initialItem, err := newLR0Item(startProd, 0)
		if err != nil {
			return nil, err
		}

		k, err := newKernel([]*lr0Item{initialItem})
		if err != nil {
			return nil, err
		}

		automaton.initialState = k.id
		knownKernels[k.id] = struct{}{}
		uncheckedKernels = append(uncheckedKernels, k)
	}

	for len(uncheckedKernels) > 0 {
		nextUncheckedKernels := []*kernel{}
		for _, k := range uncheckedKernels {
			state, neighbours, err := genStateAndNeighbourKernels(k, prods, startProd)
			if err != nil {
				return nil, err
			}
			state.num = currentState
			currentState = currentState.next()

			automaton.states[state.id] = state
			automaton.ordered = append(automaton.ordered, state)

			for _, k := range neighbours {
				if _, known := knownKernels[k.id]; known {
					continue
				}
				knownKernels[k.id] = struct{}{}
				nextUncheckedKernels = append(nextUncheckedKernels, k)
			}
		}
		uncheckedKernels = nextUncheckedKernels
	}

	return automaton, nil
}

func genStateAndNeighbourKernels(k *kernel, prods *productionSet, startProd *production) (*lr0State, []*kernel, error) {
	items, err := genLR0Closure(k, prods)
	if err != nil {
		return nil, nil, err
	}
	neighbours, err := genNeighbourKernels(items, prods, startProd)
	if err != nil {
		return nil, nil, err
	}

	next := map[Symbol]kernelID{}
	kernels := []*kernel{}
	for _, n := range neighbours {
		next[n.symbol] = n.kernel.id
		kernels = append(kernels, n.kernel)
	}

	reducible := map[productionID]struct{}{}
	for _, item := range items {
		if item.reducible {
			reducible[item.prod] = struct{}{}
		}
	}

	return &lr0State{
		kernel:    k,
		items:     items,
		next:      next,
		reducible: reducible,
	}, kernels, nil
}

func genLR0Closure(k *kernel, prods *productionSet) ([]*lr0Item, error) {
	items := []*lr0Item{}
	knownItems := map[lr0ItemID]struct{}{}
	uncheckedItems := []*lr0Item{}
	for _, item := range k.items {
		items = append(items, item)
		knownItems[item.id] = struct{}{}
		uncheckedItems = append(uncheckedItems, item)
	}
	for len(uncheckedItems) > 0 {
		nextUncheckedItems := []*lr0Item{}
		for _, item := range uncheckedItems {
			if !item.dottedSymbol.IsNonTerminal() {
				continue
			}

			ps, _ := prods.findByLHS(item.dottedSymbol)
			for _, prod := range ps {
				item, err := newLR0Item(prod, 0)
				if err != nil {
					return nil, err
				}
				if _, exist := knownItems[item.id]; exist {
					continue
				}
				items = append(items, item)
				knownItems[item.id] = struct{}{}
				nextUncheckedItems = append(nextUncheckedItems, item)
			}
		}
		uncheckedItems = nextUncheckedItems
	}

	return items, nil
}

type neighbourKernel struct {
	symbol Symbol
	kernel *kernel
}

// genNeighbourKernels computes goto over every symbol that appears after a
// dot. Symbols are processed in their defined order so that state numbering
// is deterministic.
func genNeighbourKernels(items []*lr0Item, prods *productionSet, startProd *production) ([]*neighbourKernel, error) {
	kItemMap := map[Symbol][]*lr0Item{}
	for _, item := range items {
		if item.dottedSymbol.IsNil() {
			continue
		}
		prod, ok := findProduction(prods, startProd, item.prod)
		if !ok {
			return nil, fmt.Errorf("a production was not found: %v", item.prod)
		}
		kItem, err := newLR0Item(prod, item.dot+1)
		if err != nil {
			return nil, err
		}
		kItemMap[item.dottedSymbol] = append(kItemMap[item.dottedSymbol], kItem)
	}

	nextSyms := []Symbol{}
	for sym := range kItemMap {
		nextSyms = append(nextSyms, sym)
	}
	sort.Slice(nextSyms, func(i, j int) bool {
		return nextSyms[i] < nextSyms[j]
	})

	kernels := []*neighbourKernel{}
	for _, sym := range nextSyms {
		k, err := newKernel(kItemMap[sym])
		if err != nil {
			return nil, err
		}
		kernels = append(kernels, &neighbourKernel{
			symbol: sym,
			kernel: k,
		})
	}

	return kernels, nil
}

// findProduction looks an item's production up in the grammar, falling back
// to the augmented start production, which is not a member of prods.
func findProduction(prods *productionSet, startProd *production, id productionID) (*production, bool) {
	if prod, ok := prods.findByID(id); ok {
		return prod, true
	}
	if startProd.id == id {
		return startProd, true
	}
	return nil, false
}
