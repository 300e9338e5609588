// Package common contains shared functionality for command handlers
package common

import (
	"fmt"

	"fjacquet/event-budget/internal/models"

	"github.com/spf13/cobra"
)

// ChangedString returns the flag value when the flag was given on the
// command line, nil otherwise.
func ChangedString(cmd *cobra.Command, name string) (*string, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ChangedBool returns the flag value when the flag was given on the command
// line, nil otherwise.
func ChangedBool(cmd *cobra.Command, name string) (*bool, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ChangedAmount parses the flag as an amount when it was given on the
// command line, nil otherwise.
func ChangedAmount(cmd *cobra.Command, name string) (*models.Money, error) {
	raw, err := ChangedString(cmd, name)
	if err != nil || raw == nil {
		return nil, err
	}
	amount, err := models.ParseAmount(*raw)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &amount, nil
}
