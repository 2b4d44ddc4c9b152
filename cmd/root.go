/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "campuschat",
	Short: "A local-first chat app for students, teachers, admins and devs",
	Long: `campuschat is a local-first chat application: register or log in
with a role, browse the rooms visible to that role, and exchange
messages. All state lives in a local key-value store.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
