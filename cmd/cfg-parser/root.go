package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Youngermaster/Context-Free-Grammar-Parser/driver"
	"github.com/Youngermaster/Context-Free-Grammar-Parser/grammar"
	"github.com/Youngermaster/Context-Free-Grammar-Parser/spec"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cfg-parser",
	Short: "Decide whether a grammar is LL(1), SLR(1), both, or neither",
	Long: `cfg-parser reads a context-free grammar from standard input, tries to build
an LL(1) parser and an SLR(1) parser for it, and recognizes input strings
with whichever parsers could be built.`,
	Example:       `  cfg-parser < session.txt`,
	Args:          cobra.NoArgs,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootFlags = struct {
	source *string
	direct *bool
}{}

func init() {
	rootFlags.source = rootCmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootFlags.direct = rootCmd.Flags().Bool("direct", false, "force reading directly from stdin instead of going through GNU readline where possible")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	src, err := openSource(*rootFlags.source)
	if err != nil {
		return err
	}
	if src != os.Stdin {
		defer src.Close()
	}

	br := bufio.NewReader(src)
	gram, err := buildGrammar(br)
	if err != nil {
		return err
	}

	var in driver.CommandReader
	if src == os.Stdin && !*rootFlags.direct && readline.DefaultIsTerminal() {
		in, err = driver.NewInteractiveReader()
		if err != nil {
			in = driver.NewDirectReader(br)
		}
	} else {
		in = driver.NewDirectReader(br)
	}
	defer in.Close()

	d := driver.New(gram, in, os.Stdout)
	return d.Run()
}

func openSource(path string) (*os.File, error) {
	if path == "" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the source file %s: %w", path, err)
	}
	return f, nil
}

// buildGrammar parses a grammar definition from r. Reading through the
// caller's buffered reader keeps the string blocks that follow the
// definition available to it.
func buildGrammar(r io.Reader) (*grammar.Grammar, error) {
	ast, err := spec.Parse(r)
	if err != nil {
		return nil, err
	}

	b := grammar.GrammarBuilder{
		AST: ast,
	}
	return b.Build()
}
