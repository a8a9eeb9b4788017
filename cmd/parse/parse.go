// Package parse implements the statement import command.
package parse

import (
	"fmt"

	"fintrack/bankstmt/cmd/root"
	"fintrack/bankstmt/internal/csvio"
	"fintrack/bankstmt/internal/statement"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
	mappingID  string
	source     string
	scanWindow int

	// Cmd is the parse command
	Cmd = &cobra.Command{
		Use:   "parse",
		Short: "Parse a bank statement CSV into categorized transactions",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input statement CSV file")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file for parsed transactions")
	Cmd.Flags().StringVarP(&mappingID, "mapping", "m", "", "Field mapping id (default: configured fallback)")
	Cmd.Flags().StringVarP(&source, "source", "s", "", "Source recorded on transactions (csv or excel)")
	Cmd.Flags().IntVar(&scanWindow, "scan-window", 0, "Rows to scan for the header (default: configured value)")
	_ = Cmd.MarkFlagRequired("input")
}

func run(cmd *cobra.Command, args []string) error {
	mapping := root.Store.DefaultMapping()
	if mappingID != "" {
		m, ok := root.Store.MappingByID(mappingID)
		if !ok {
			return fmt.Errorf("unknown field mapping %q", mappingID)
		}
		mapping = m
	}

	rows, err := csvio.ReadRawRowsFile(inputFile, root.Cfg.DelimiterRune(), root.Log)
	if err != nil {
		return err
	}

	parser := statement.New(root.NewCategorizer(), root.Log)
	parser.SetScanWindow(root.Cfg.Parser.HeaderScanWindow)
	if scanWindow > 0 {
		parser.SetScanWindow(scanWindow)
	}
	parser.SetSource(source)

	result, err := parser.Parse(rows, mapping)
	if err != nil {
		// File-level failure: the likely fix is a different mapping.
		return fmt.Errorf("%w (try a different bank format with -m, or create a custom mapping)", err)
	}

	failed := 0
	for _, p := range result.ParsedData {
		if !p.Success {
			failed++
			root.Log.WithField("error", p.Error).Warn("Row failed to parse")
		}
	}
	fmt.Printf("Parsed %d rows: %d transactions, %d failed\n",
		len(result.ParsedData), len(result.Transactions), failed)

	if outputFile != "" {
		if err := csvio.WriteTransactionsCSV(result.Transactions, outputFile, root.Log); err != nil {
			return err
		}
	}
	return nil
}
