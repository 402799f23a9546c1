package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
)

var describeFlags = struct {
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "describe",
		Short:   "Print FIRST/FOLLOW sets, the LL(1) table, and the LR(0) automaton",
		Example: `  cfg-parser describe < grammar.txt`,
		Args:    cobra.NoArgs,
		RunE:    runDescribe,
	}
	describeFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	src, err := openSource(*describeFlags.source)
	if err != nil {
		return err
	}
	if src != os.Stdin {
		defer src.Close()
	}

	gram, err := buildGrammar(bufio.NewReader(src))
	if err != nil {
		return err
	}

	return gram.WriteDescription(os.Stdout)
}
