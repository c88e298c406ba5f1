package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyperengineering/stride/internal/record"
	"github.com/hyperengineering/stride/internal/store"
	"github.com/hyperengineering/stride/internal/validation"
	"github.com/spf13/cobra"
)

var showJSONOutput bool

var showCmd = &cobra.Command{
	Use:   "show <type> <id>",
	Short: "Show one record in full",
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSONOutput, "json", false,
		"Output in JSON format")
}

func runShow(cmd *cobra.Command, args []string) error {
	kind, err := record.ParseKind(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	// Ids are always generated by add, so a malformed one is a typo,
	// not a missing record.
	if verr := validation.ValidateUUID("id", id); verr != nil {
		return validationErr([]validation.ValidationError{*verr})
	}

	rec, err := resolveStore().Get(context.Background(), kind, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%s not found: %s", kind, id)
		}
		return err
	}

	if showJSONOutput {
		return printJSON(cmd.OutOrStdout(), rec)
	}

	renderRecord(cmd.OutOrStdout(), rec)
	return nil
}
