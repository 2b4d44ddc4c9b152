/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/campuschat/campuschat/config"
	"github.com/campuschat/campuschat/internal/kv"
	"github.com/campuschat/campuschat/internal/services"
	"github.com/campuschat/campuschat/internal/store"
	"github.com/campuschat/campuschat/internal/tui"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive chat interface",
	Long: `Opens the interactive chat interface. Usage:

	campuschat chat
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig()

		identity, rooms, closeStore, err := buildServices(cmd.Context(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
			os.Exit(1)
		}
		defer closeStore()

		if err := identity.SeedDemoUsers(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed demo users: %v\n", err)
			os.Exit(1)
		}

		if err := tui.Run(cmd.Context(), identity, rooms); err != nil {
			fmt.Fprintf(os.Stderr, "chat error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// buildServices wires the store, repositories and services for a command.
// The returned func closes the underlying store.
func buildServices(ctx context.Context, cfg config.Config) (*services.IdentityService, *services.RoomService, func(), error) {
	logger := newLogger(cfg)

	kvStore, err := kv.Open(ctx, cfg.Store)
	if err != nil {
		return nil, nil, nil, err
	}

	userRepo := store.NewUserRepository(kvStore)
	chatRepo := store.NewChatRepository(kvStore)

	identity := services.NewIdentityService(userRepo, logger)
	rooms := services.NewRoomService(chatRepo, logger)

	closeStore := func() {
		if err := kvStore.Close(); err != nil {
			logger.Error("close store failed", "err", err)
		}
	}
	return identity, rooms, closeStore, nil
}

func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
