package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sqlgate",
	Short: "sqlgate - SQL validation sandbox",
	Long: `sqlgate validates untrusted SQL queries against reference datasets.

Each query passes a lexical admission check and then runs inside a fresh
in-memory SQLite instance seeded with the caller's fixture data. Nothing
survives the request: no state is shared between validations.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
