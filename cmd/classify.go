package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/chatty/internal/layout"
	"github.com/zhubert/chatty/internal/transcript"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <transcript.yaml>",
	Short: "Print the layout variant of every message in a transcript",
	Long: `Loads a YAML transcript, validates it, and prints one line per message:
its id, author, text length in graphemes, and the layout variant the list
would render it with.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := transcript.Load(args[0])
		if err != nil {
			return err
		}
		return printVariants(cmd.OutOrStdout(), t)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func printVariants(w io.Writer, t *transcript.Transcript) error {
	msgs := t.Collection()
	for i, v := range layout.ClassifyAll(msgs) {
		author := msgs[i].Author
		if msgs[i].Me {
			author = "me"
		}
		if _, err := fmt.Fprintf(w, "%-28s %-12s %5d  %s\n", msgs[i].ID, author, layout.TextLength(msgs[i].Text), v); err != nil {
			return err
		}
	}
	return nil
}
