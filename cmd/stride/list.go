package main

import (
	"context"
	"fmt"

	"github.com/hyperengineering/stride/internal/record"
	"github.com/spf13/cobra"
)

var listJSONOutput bool

var listCmd = &cobra.Command{
	Use:   "list <type>",
	Short: "List records of one type",
	Long:  "List every readable record of a type in workbook row order. Rows that cannot be decoded are skipped with a warning.",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false,
		"Output in JSON format")
}

func runList(cmd *cobra.Command, args []string) error {
	kind, err := record.ParseKind(args[0])
	if err != nil {
		return err
	}

	records, err := resolveStore().List(context.Background(), kind)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if listJSONOutput {
		return printJSON(out, map[string]any{
			"records": records,
			"total":   len(records),
		})
	}

	if len(records) == 0 {
		fmt.Fprintf(out, "No %ss found.\n", kind)
		return nil
	}

	renderList(out, kind, records)
	return nil
}
