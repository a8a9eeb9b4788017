// Package mappings implements management commands for field mappings and
// keyword rules.
package mappings

import (
	"fmt"

	"fintrack/bankstmt/cmd/root"
	"fintrack/bankstmt/internal/mappingstore"

	"github.com/spf13/cobra"
)

var (
	// Cmd is the mappings command group
	Cmd = &cobra.Command{
		Use:   "mappings",
		Short: "Manage field mappings and keyword rules",
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all field mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range root.Store.LoadFieldMappings() {
				kind := "custom"
				if m.IsDefault {
					kind = "built-in"
				}
				mode := "withdrawal/deposit"
				if m.UsesAmountColumn() {
					mode = "amount"
				}
				fmt.Printf("%-38s %-24s %-10s %s\n", m.ID, m.BankName, kind, mode)
			}
			return nil
		},
	}

	createBankName    string
	createStarterWord string
	createDateCol     string
	createDescCol     string
	createOpts        mappingstore.CreateOptions

	createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a custom field mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := root.Store.CreateFieldMapping(
				createBankName, createStarterWord, createDateCol, createDescCol, createOpts)
			if err != nil {
				return err
			}
			fmt.Printf("Created mapping %s\n", m.ID)
			return nil
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Discard all mapping edits and custom mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.Store.ResetFieldMappings()
		},
	}

	rulesCmd = &cobra.Command{
		Use:   "rules",
		Short: "List the active keyword rules in match order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range root.Store.ActiveRules() {
				fmt.Printf("%-24s %s\n", r.Keyword, r.Category)
			}
			return nil
		},
	}

	addRuleCmd = &cobra.Command{
		Use:   "add-rule <keyword> <category>",
		Short: "Add or update a keyword rule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.Store.AddOrUpdateRule(args[0], args[1])
		},
	}

	deleteRuleCmd = &cobra.Command{
		Use:   "delete-rule <keyword>",
		Short: "Delete a keyword rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.Store.DeleteRule(args[0])
		},
	}

	resetRulesCmd = &cobra.Command{
		Use:   "reset-rules",
		Short: "Discard all user keyword rules, reverting to the suggested set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.Store.ResetAllRules()
		},
	}
)

func init() {
	createCmd.Flags().StringVar(&createBankName, "bank", "", "Bank display name")
	createCmd.Flags().StringVar(&createStarterWord, "starter-word", "", "Header row starter word")
	createCmd.Flags().StringVar(&createDateCol, "date-column", "", "Date column name")
	createCmd.Flags().StringVar(&createDescCol, "description-column", "", "Description column name")
	createCmd.Flags().StringVar(&createOpts.AmountColumn, "amount-column", "", "Single amount column name")
	createCmd.Flags().StringVar(&createOpts.WithdrawalColumn, "withdrawal-column", "", "Withdrawal (debit) column name")
	createCmd.Flags().StringVar(&createOpts.DepositColumn, "deposit-column", "", "Deposit (credit) column name")
	createCmd.Flags().StringVar(&createOpts.TypeColumn, "type-column", "", "Explicit debit/credit indicator column name")
	_ = createCmd.MarkFlagRequired("bank")
	_ = createCmd.MarkFlagRequired("starter-word")
	_ = createCmd.MarkFlagRequired("date-column")
	_ = createCmd.MarkFlagRequired("description-column")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(resetCmd)
	Cmd.AddCommand(rulesCmd)
	Cmd.AddCommand(addRuleCmd)
	Cmd.AddCommand(deleteRuleCmd)
	Cmd.AddCommand(resetRulesCmd)
}
