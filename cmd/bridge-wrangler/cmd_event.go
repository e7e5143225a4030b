package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rick-Wilson/bridge-wrangler/internal/filter"
)

var (
	eventInput   string
	eventName    string
	eventOutput  string
	eventInPlace bool
)

// eventCmd rewrites Event tags across a file
var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Set every board's Event tag to a new name",
	Long: `Rewrites all Event tags in the file to the given name. The rest of
the file passes through untouched. Writes to "<input>-Updated.pbn"
unless --output or --in-place is given.`,
	RunE: runEvent,
}

func init() {
	eventCmd.Flags().StringVarP(&eventInput, "input", "i", "", "Input PBN file (required)")
	eventCmd.Flags().StringVarP(&eventName, "event", "e", "", "Event name to set (required)")
	eventCmd.Flags().StringVarP(&eventOutput, "output", "o", "", "Output file")
	eventCmd.Flags().BoolVar(&eventInPlace, "in-place", false, "Update the input file in place")
	eventCmd.MarkFlagRequired("input")
	eventCmd.MarkFlagRequired("event")
	eventCmd.MarkFlagsMutuallyExclusive("output", "in-place")
}

func runEvent(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(eventInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", eventInput, err)
	}

	updated, count := filter.SetEvent(string(content), eventName)

	outPath := eventOutput
	if eventInPlace {
		outPath = eventInput
	} else if outPath == "" {
		outPath = suffixedOutputPath(eventInput, "Updated")
	}

	if err := os.WriteFile(outPath, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	if eventInPlace {
		fmt.Printf("Updated %d Event tags in %s to %q\n", count, eventInput, eventName)
	} else {
		fmt.Printf("Updated %d Event tags, wrote to %s\n", count, outPath)
	}
	return nil
}
