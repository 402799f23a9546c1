package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Youngermaster/Context-Free-Grammar-Parser/grammar"
	"github.com/Youngermaster/Context-Free-Grammar-Parser/spec"
)

func genGrammar(t *testing.T, src string) *grammar.Grammar {
	t.Helper()

	ast, err := spec.Parse(strings.NewReader(strings.TrimLeft(src, "\n")))
	require.NoError(t, err)

	b := grammar.GrammarBuilder{
		AST: ast,
	}
	gram, err := b.Build()
	require.NoError(t, err)
	return gram
}

func TestLL1ParserRecognize(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		inputs  map[string]bool
	}{
		{
			caption: "a grammar with an ε-alternative",
			src: `
3
S -> AB
A -> aA d
B -> bBc e
`,
			inputs: map[string]bool{
				"d":       true,
				"adbc":    true,
				"aadbbcc": true,
				"a":       false,
				"":        false,
				"db":      false,
			},
		},
		{
			caption: "a grammar deriving the empty string",
			src: `
1
S -> aS e
`,
			inputs: map[string]bool{
				"":    true,
				"a":   true,
				"aaa": true,
				"b":   false,
				"ab":  false,
			},
		},
		{
			caption: "matched pairs",
			src: `
1
S -> aSb e
`,
			inputs: map[string]bool{
				"":     true,
				"ab":   true,
				"aabb": true,
				"aab":  false,
				"ba":   false,
			},
		},
		{
			caption: "reserved characters never match",
			src: `
1
S -> aS e
`,
			inputs: map[string]bool{
				"e":   false,
				"ae":  false,
				"a$":  false,
				"$":   false,
				"a$a": false,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			p, err := NewLL1Parser(genGrammar(t, tt.src))
			require.NoError(t, err)

			for input, expected := range tt.inputs {
				assert.Equal(t, expected, p.Recognize(input), "input: %q", input)
			}
		})
	}
}

func TestLL1ParserNotLL1(t *testing.T) {
	_, err := NewLL1Parser(genGrammar(t, `
1
S -> Sa a
`))
	assert.Error(t, err)
}

func TestSLRParserRecognize(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		inputs  map[string]bool
	}{
		{
			caption: "the expression grammar",
			src: `
3
S -> S+T T
T -> T*F F
F -> (S) i
`,
			inputs: map[string]bool{
				"i+i":      true,
				"(i)":      true,
				"i+i*i":    true,
				"(i+i)*i":  true,
				"(i+i)*i)": false,
				"i+":       false,
				"":         false,
			},
		},
		{
			caption: "left recursion",
			src: `
1
S -> Sa a
`,
			inputs: map[string]bool{
				"a":   true,
				"aa":  true,
				"aaa": true,
				"":    false,
				"b":   false,
			},
		},
		{
			caption: "matched pairs",
			src: `
1
S -> aSb e
`,
			inputs: map[string]bool{
				"":     true,
				"ab":   true,
				"aabb": true,
				"aab":  false,
			},
		},
		{
			caption: "reserved characters never match",
			src: `
3
S -> S+T T
T -> T*F F
F -> (S) i
`,
			inputs: map[string]bool{
				"i$i": false,
				"i$":  false,
				"$":   false,
				"e":   false,
				"i+e": false,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			p, err := NewSLRParser(genGrammar(t, tt.src))
			require.NoError(t, err)

			for input, expected := range tt.inputs {
				assert.Equal(t, expected, p.Recognize(input), "input: %q", input)
			}
		})
	}
}

func TestSLRParserNotSLR1(t *testing.T) {
	_, err := NewSLRParser(genGrammar(t, `
2
S -> A
A -> A b
`))
	assert.Error(t, err)
}

func TestRecognizeIsRepeatable(t *testing.T) {
	p, err := NewSLRParser(genGrammar(t, `
3
S -> S+T T
T -> T*F F
F -> (S) i
`))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.True(t, p.Recognize("i+i*i"))
		assert.False(t, p.Recognize("i+"))
	}

	ll1, err := NewLL1Parser(genGrammar(t, `
1
S -> aSb e
`))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.True(t, ll1.Recognize("aabb"))
		assert.False(t, ll1.Recognize("aab"))
	}
}
