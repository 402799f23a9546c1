package grammar

import (
	"strings"
	"testing"

	"github.com/Youngermaster/Context-Free-Grammar-Parser/spec"
)

func genGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	ast, err := spec.Parse(strings.NewReader(strings.TrimLeft(src, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	b := GrammarBuilder{
		AST: ast,
	}
	gram, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return gram
}

func testSymbolSet(t *testing.T, caption string, actual map[Symbol]struct{}, expected string) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Fatalf("invalid %v set\nwant: %q\ngot: %v", caption, expected, formatSet(actual))
	}
	for i := 0; i < len(expected); i++ {
		if _, ok := actual[SymbolFromChar(expected[i])]; !ok {
			t.Fatalf("invalid %v set\nwant: %q\ngot: %v", caption, expected, formatSet(actual))
		}
	}
}

func formatSet(set map[Symbol]struct{}) string {
	var b strings.Builder
	for _, sym := range sortedEntrySymbols(set) {
		b.WriteString(sym.String())
	}
	return b.String()
}
