package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "slabctl",
	Short: "Exercise and inspect slabkit allocators",
	Long: `slabctl is a workbench for the slabkit fixed-block allocator.
It can benchmark allocation throughput over the heap- or OS-backed
allocators and print the resolved configuration and growth plan for a
given set of slab parameters.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode.
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
