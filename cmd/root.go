package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/chatty/internal/app"
	"github.com/zhubert/chatty/internal/config"
	"github.com/zhubert/chatty/internal/history"
	"github.com/zhubert/chatty/internal/logger"
	"github.com/zhubert/chatty/internal/transcript"
)

var (
	debugMode             bool
	quietMode             bool
	transcriptPath        string
	historyPath           string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "chatty",
	Short: "A chat message list for the terminal",
	Long: `Chatty opens a full-screen conversation: a scrollable message list with
date headers, replies, media cards and a context menu, plus an input box.
A scripted peer answers what you send. Messages are kept in a SQLite history.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "Seed the conversation from a YAML transcript")
	rootCmd.Flags().StringVar(&historyPath, "history", "", "SQLite history file (\":memory:\" keeps nothing)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("chatty %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("chatty %s\n", version)
}

// resolveHistoryPath picks the history file: the flag, then the config,
// then ~/.chatty/history.db.
func resolveHistoryPath(flag string, cfg *config.Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg.HistoryPath != "" {
		return cfg.HistoryPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatty", "history.db"), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.ApplyEnv(".env"); err != nil {
		return fmt.Errorf("error applying environment: %w", err)
	}

	defer logger.Close()

	var seed *transcript.Transcript
	if transcriptPath != "" {
		seed, err = transcript.Load(transcriptPath)
		if err != nil {
			return err
		}
	}

	path, err := resolveHistoryPath(historyPath, cfg)
	if err != nil {
		return fmt.Errorf("error locating history: %w", err)
	}
	if path != history.MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("error creating history directory: %w", err)
		}
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	m := app.New(cfg, app.Options{
		Version:    version,
		Transcript: seed,
		History:    store,
	})
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
