// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/namedata/internal/dataset"
	"github.com/pdiddy/namedata/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [artifact] [names...]",
	Short: "Look up name attributes in a combined artifact",
	Long: `Lookup decodes a combined artifact and prints the country, gender, and
rank attributes for each given name, checking both the first-name and
last-name datasets. Matching is case-insensitive.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	c, err := dataset.ReadCombined(args[0])
	if err != nil {
		return err
	}
	table := dataset.NewTable(c)

	for _, name := range args[1:] {
		fmt.Printf("%s:\n", name)
		found := false
		if r, ok := table.First(name); ok {
			printRecord("first", r)
			found = true
		}
		if r, ok := table.Last(name); ok {
			printRecord("last", r)
			found = true
		}
		if !found {
			fmt.Println("  not found")
		}
	}
	return nil
}

func printRecord(kind string, r types.NameRecord) {
	fmt.Printf("  %s:\n", kind)
	for _, country := range sortedByProbability(r.Country) {
		if rank, ok := r.Rank[country]; ok {
			fmt.Printf("    country %s: %.4f (rank %d)\n", country, r.Country[country], rank)
		} else {
			fmt.Printf("    country %s: %.4f\n", country, r.Country[country])
		}
	}
	for _, gender := range sortedByProbability(r.Gender) {
		fmt.Printf("    gender %s: %.4f\n", gender, r.Gender[gender])
	}
}

// sortedByProbability orders keys by descending probability, ties by key.
func sortedByProbability(m map[string]float32) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
