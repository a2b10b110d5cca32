// Package main provides the entry point for the interview prep server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_prep",
	Short: "Marketing interview prep generator",
	Long:  "Interview Prep generates stage-specific marketing interview questions, a STAR answer framework, tips, and key skills to cover, with keyword highlighting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
