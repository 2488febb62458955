package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

func getStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

func getDuration(cmd *cobra.Command, flag string) time.Duration {
	r, err := cmd.Flags().GetDuration(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}
