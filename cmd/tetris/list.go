package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-gym/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered environments",
	Long:  `Shows a list of all environment variants in the registry.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	envs := registry.List()

	if len(envs) == 0 {
		fmt.Println("No environments registered.")
		return
	}

	fmt.Println("Available environments:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range envs {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, e := range envs {
		fmt.Printf("  %-*s  %s\n", maxIDLen, e.ID, e.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tetris rollout <id>' to play it with a random agent.")
}
