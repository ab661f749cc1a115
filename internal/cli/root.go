package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "daystart",
	Short: "Personal new-tab productivity dashboard",
	Long: `daystart is the backend for a personal new-tab productivity dashboard.

It serves tasks, habits, schedule, quick links, notes and daily
insights over a small REST API backed by an in-memory store, plus a
quote of the day and current weather.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
