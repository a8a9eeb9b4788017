// Package categorize implements the one-off categorization command.
package categorize

import (
	"fmt"

	"fintrack/bankstmt/cmd/root"

	"github.com/spf13/cobra"
)

var (
	description string

	// Cmd is the categorize command
	Cmd = &cobra.Command{
		Use:   "categorize",
		Short: "Categorize a single transaction description",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	_ = Cmd.MarkFlagRequired("description")
}

func run(cmd *cobra.Command, args []string) error {
	category := root.NewCategorizer().Categorize(description)
	fmt.Println(category)
	return nil
}
