/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campuschat/campuschat/config"
)

// demoCmd represents the demo command.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed the demo accounts and default rooms",
	Long: `Seeds the four demo accounts and the three default rooms without
opening the chat interface. Seeding is idempotent; running it again
changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		identity, rooms, closeStore, err := buildServices(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer closeStore()

		if err := identity.SeedDemoUsers(cmd.Context()); err != nil {
			return fmt.Errorf("seed demo users: %w", err)
		}
		if err := rooms.EnsureDefaultRooms(cmd.Context()); err != nil {
			return fmt.Errorf("seed default rooms: %w", err)
		}

		fmt.Fprintln(os.Stdout, "Demo data ready. Accounts (password: \"password\"):")
		for _, email := range []string{"student@demo.com", "teacher@demo.com", "admin@demo.com", "dev@demo.com"} {
			fmt.Fprintf(os.Stdout, "  %s\n", email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
