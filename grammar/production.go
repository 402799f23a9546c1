package grammar

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

type productionID [32]byte

func (id productionID) String() string {
	return hex.EncodeToString(id[:])
}

func genProductionID(lhs Symbol, rhs []Symbol) productionID {
	seq := lhs.byte()
	for _, sym := range rhs {
		seq = append(seq, sym.byte()...)
	}
	return productionID(sha256.Sum256(seq))
}

type productionNum int

const (
	productionNumNil   = productionNum(0)
	productionNumStart = productionNum(1)
	productionNumMin   = productionNum(2)
)

func (n productionNum) Int() int {
	return int(n)
}

// production is a rewrite rule A → α. An ε-production is stored with an
// empty RHS: the alternative "e" (and any epsilon symbol embedded in a
// longer alternative) is dropped during construction, so rhsLen is always
// the effective length every algorithm works with.
type production struct {
	id     productionID
	num    productionNum
	lhs    Symbol
	rhs    []Symbol
	rhsLen int
}

func newProduction(lhs Symbol, rhs []Symbol) (*production, error) {
	if !lhs.IsNonTerminal() {
		return nil, fmt.Errorf("LHS must be a non-terminal symbol; LHS: %v, RHS: %v", lhs, symbolsToString(rhs))
	}

	var normalized []Symbol
	for _, sym := range rhs {
		if sym.IsNil() {
			return nil, fmt.Errorf("a symbol of RHS must be a non-nil symbol; LHS: %v", lhs)
		}
		if sym.IsEpsilon() {
			continue
		}
		normalized = append(normalized, sym)
	}

	return &production{
		id:     genProductionID(lhs, normalized),
		lhs:    lhs,
		rhs:    normalized,
		rhsLen: len(normalized),
	}, nil
}

func (p *production) isEmpty() bool {
	return p.rhsLen == 0
}

func (p *production) String() string {
	return fmt.Sprintf("%v → %v", p.lhs, symbolsToString(p.rhs))
}

// productionSet holds all productions of a grammar in source order, indexed
// by LHS and by ID.
type productionSet struct {
	prods     []*production
	lhs2Prods map[Symbol][]*production
	id2Prod   map[productionID]*production
	num       productionNum
}

func newProductionSet() *productionSet {
	return &productionSet{
		lhs2Prods: map[Symbol][]*production{},
		id2Prod:   map[productionID]*production{},
		num:       productionNumMin,
	}
}

func (ps *productionSet) append(prod *production) bool {
	if _, ok := ps.id2Prod[prod.id]; ok {
		return false
	}

	if prod.lhs.isStart() {
		prod.num = productionNumStart
	} else {
		prod.num = ps.num
		ps.num++
	}

	ps.prods = append(ps.prods, prod)
	ps.lhs2Prods[prod.lhs] = append(ps.lhs2Prods[prod.lhs], prod)
	ps.id2Prod[prod.id] = prod

	return true
}

func (ps *productionSet) findByID(id productionID) (*production, bool) {
	prod, ok := ps.id2Prod[id]
	return prod, ok
}

func (ps *productionSet) findByLHS(lhs Symbol) ([]*production, bool) {
	if lhs.IsNil() {
		return nil, false
	}

	prods, ok := ps.lhs2Prods[lhs]
	return prods, ok
}

// getAllProductions returns the productions in source order.
func (ps *productionSet) getAllProductions() []*production {
	return ps.prods
}

func (ps *productionSet) maxNum() productionNum {
	return ps.num - 1
}
