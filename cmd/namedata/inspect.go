// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/namedata/internal/dataset"
	"github.com/pdiddy/namedata/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [artifact]",
	Short: "Print record counts and a sample of an exported artifact",
	Long: `Inspect decodes an exported artifact and prints its record counts and the
first few names per dataset. Use --kind for single-category artifacts;
the default expects a combined artifact.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	sample, _ := cmd.Flags().GetInt("sample")

	switch kind {
	case "combined":
		c, err := dataset.ReadCombined(args[0])
		if err != nil {
			return err
		}
		printDataset(c.First, sample)
		printDataset(c.Last, sample)
	case types.LabelFirst, types.LabelLast:
		d, err := dataset.ReadDataset(args[0], kind)
		if err != nil {
			return err
		}
		printDataset(d, sample)
	default:
		return fmt.Errorf("unknown kind %q: use first, last, or combined", kind)
	}
	return nil
}

func printDataset(d types.NameDataset, sample int) {
	fmt.Printf("%s names: %d\n", d.Label, d.Len())
	for i, r := range d.Records {
		if i >= sample {
			break
		}
		fmt.Printf("  %s (countries: %d, genders: %d, ranks: %d)\n",
			r.Name, len(r.Country), len(r.Gender), len(r.Rank))
	}
}

func init() {
	inspectCmd.Flags().String("kind", "combined", "artifact kind: first, last, or combined")
	inspectCmd.Flags().Int("sample", 5, "number of leading records to print per dataset")

	rootCmd.AddCommand(inspectCmd)
}
