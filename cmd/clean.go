package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/zhubert/chatty/internal/config"
	"github.com/zhubert/chatty/internal/history"
	"github.com/zhubert/chatty/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the message history and the debug log",
	Long: `Deletes the SQLite history file (with its -wal and -shm companions) and the
debug log. The config file is kept.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().StringVar(&historyPath, "history", "", "SQLite history file to remove")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	path, err := resolveHistoryPath(historyPath, cfg)
	if err != nil {
		return fmt.Errorf("error locating history: %w", err)
	}
	out := cmd.OutOrStdout()
	if n, err := storedMessages(cmd.Context(), path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error reading history: %v\n", err)
	} else if n > 0 {
		fmt.Fprintf(out, "History holds %s message(s).\n", humanize.Comma(int64(n)))
	}
	return runCleanWithReader(os.Stdin, out, cleanTargets(path))
}

// storedMessages counts the messages in the history at path without
// creating it.
func storedMessages(ctx context.Context, path string) (int, error) {
	if path == "" || path == history.MemoryPath {
		return 0, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, nil
	}
	store, err := history.Open(path)
	if err != nil {
		return 0, err
	}
	defer store.Close()
	return store.Count(ctx)
}

// cleanTargets lists the files clean may remove for the given history path.
func cleanTargets(historyPath string) []string {
	var targets []string
	if historyPath != "" && historyPath != history.MemoryPath {
		targets = append(targets, historyPath, historyPath+"-wal", historyPath+"-shm")
	}
	log := logger.Path()
	if log == "" {
		log = logger.DefaultLogPath
	}
	return append(targets, log)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, out io.Writer, targets []string) error {
	type existing struct {
		path string
		size int64
	}
	var found []existing
	for _, path := range targets {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		found = append(found, existing{path, info.Size()})
	}

	if len(found) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, f := range found {
		fmt.Fprintf(out, "  - %s (%s)\n", f.path, humanize.Bytes(uint64(f.size)))
	}

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	removed := 0
	for _, f := range found {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error removing %s: %v\n", f.path, err)
			continue
		}
		removed++
	}
	fmt.Fprintf(out, "Removed %d file(s).\n", removed)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
