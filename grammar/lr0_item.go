package grammar

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"
)

type lr0ItemID [32]byte

func (id lr0ItemID) num() uint32 {
	return binary.LittleEndian.Uint32(id[:])
}

// lr0Item is a production with a dot marking parsing progress.
//
// E → E + T
//
// Dot | Dotted Symbol | Item
// ----+---------------+------------
// 0   | E             | E →・E + T
// 1   | +             | E → E・+ T
// 2   | T             | E → E +・T
// 3   | Nil           | E → E + T・
//
// An ε-production has effective length 0, so its only item is the one with
// dot 0, and that item is already reducible.
type lr0Item struct {
	id   lr0ItemID
	prod productionID

	dot          int
	dottedSymbol Symbol

	// When initial is true, the item is S' →・S.
	initial bool

	// When reducible is true, the dot is past the end of the RHS.
	reducible bool

	// When kernel is true, the item is a kernel item.
	kernel bool
}

func newLR0Item(prod *production, dot int) (*lr0Item, error) {
	if prod == nil {
		return nil, fmt.Errorf("production must be non-nil")
	}

	if dot < 0 || dot > prod.rhsLen {
		return nil, fmt.Errorf("dot must be between 0 and %v", prod.rhsLen)
	}

	var id lr0ItemID
	{
		b := []byte{}
		b = append(b, prod.id[:]...)
		bDot := make([]byte, 8)
		binary.LittleEndian.PutUint64(bDot, uint64(dot))
		b = append(b, bDot...)
		id = sha256.Sum256(b)
	}

	dottedSymbol := SymbolNil
	if dot < prod.rhsLen {
		dottedSymbol = prod.rhs[dot]
	}

	return &lr0Item{
		id:           id,
		prod:         prod.id,
		dot:          dot,
		dottedSymbol: dottedSymbol,
		initial:      prod.lhs.isStart() && dot == 0,
		reducible:    dot == prod.rhsLen,
		kernel:       prod.lhs.isStart() || dot > 0,
	}, nil
}

type kernelID [32]byte

// kernel is the set of kernel items of a state. Two states are the same
// exactly when their kernels are: the closure is a function of the kernel,
// so kernel identity is item-set identity.
type kernel struct {
	id    kernelID
	items []*lr0Item
}

func newKernel(items []*lr0Item) (*kernel, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("a kernel needs at least one item")
	}

	// Remove duplicates from items and sort them to get a canonical form.
	var sortedItems []*lr0Item
	{
		m := map[lr0ItemID]*lr0Item{}
		for _, item := range items {
			if !item.kernel {
				return nil, fmt.Errorf("not a kernel item: %v", item.prod)
			}
			m[item.id] = item
		}
		sortedItems = make([]*lr0Item, 0, len(m))
		for _, item := range m {
			sortedItems = append(sortedItems, item)
		}
		sort.Slice(sortedItems, func(i, j int) bool {
			return sortedItems[i].id.num() < sortedItems[j].id.num()
		})
	}

	var id kernelID
	{
		b := []byte{}
		for _, item := range sortedItems {
			b = append(b, item.id[:]...)
		}
		id = sha256.Sum256(b)
	}

	return &kernel{
		id:    id,
		items: sortedItems,
	}, nil
}

type stateNum int

const stateNumInitial = stateNum(0)

func (n stateNum) Int() int {
	return int(n)
}

func (n stateNum) String() string {
	return strconv.Itoa(int(n))
}

func (n stateNum) next() stateNum {
	return stateNum(n + 1)
}

// lr0State is a state of the canonical LR(0) collection: its kernel, the
// full closure, the transitions leaving it, and the reducible productions.
type lr0State struct {
	*kernel
	num       stateNum
	items     []*lr0Item
	next      map[Symbol]kernelID
	reducible map[productionID]struct{}
}
