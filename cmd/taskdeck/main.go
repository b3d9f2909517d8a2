package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkr2177/taskdeck/internal/auth"
	"github.com/mkr2177/taskdeck/internal/config"
	"github.com/mkr2177/taskdeck/internal/storage"
	"github.com/mkr2177/taskdeck/internal/task"
	"github.com/mkr2177/taskdeck/internal/update"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagDataDir    string
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Terminal task manager with a persistent local store",
	Long: `taskdeck is a keyboard-driven task manager. Sign in with one of the demo
accounts, then manage tasks from the dashboard and list screens; everything
is persisted to a local SQLite database between runs.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "path to the data directory (default ~/.config/taskdeck)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to the config file (default <data>/config.yml)")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dir := flagDataDir
	if dir == "" {
		home, err := config.DefaultDir()
		if err != nil {
			return err
		}
		dir = home
	}

	var cfg config.Config
	var err error
	if flagConfigPath != "" {
		cfg, err = config.LoadFile(dir, flagConfigPath)
	} else {
		cfg, err = config.Load(dir)
	}
	if err != nil {
		return err
	}

	slots, err := storage.OpenSQLite(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer slots.Close()

	session := auth.NewSessionManager(slots, auth.DefaultCredentials())
	if _, _, err := session.Restore(ctx); err != nil {
		// A broken session record should not lock the user out; drop it and
		// prompt for a fresh login.
		if err := session.Logout(ctx); err != nil {
			return err
		}
	}

	tasks, err := task.Open(ctx, slots)
	if err != nil {
		return err
	}

	program := tea.NewProgram(update.New(ctx, session, tasks, cfg))
	_, err = program.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "taskdeck failed: %v\n", err)
		os.Exit(1)
	}
}
