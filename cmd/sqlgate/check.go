package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/michaelbrown/sqlgate/internal/config"
	"github.com/michaelbrown/sqlgate/internal/fixture"
	"github.com/michaelbrown/sqlgate/internal/sandbox"
	"github.com/michaelbrown/sqlgate/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check <fixture.yaml>",
	Short: "Run a question fixture through the validator",
	Long: `Run every query in a fixture file through the full validation path
(admission check plus sandboxed execution against the fixture's seed data).

The fixture format:

  name: top-three
  seed_sql: |
    CREATE TABLE t(x INT);
    INSERT INTO t VALUES (1),(2),(3);
  queries:
    - sql: SELECT x FROM t ORDER BY x;
      note: reference answer

Exits non-zero if any query yields an error verdict.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fx, err := fixture.Load(args[0])
	if err != nil {
		return err
	}

	svc := validate.New(sandbox.NewSQLiteSandbox(cfg.Policy()))

	if fx.Name != "" {
		fmt.Printf("Fixture: %s\n\n", fx.Name)
	}

	failed := 0
	for i, q := range fx.Queries {
		label := q.Note
		if label == "" {
			label = fmt.Sprintf("query %d", i+1)
		}
		fmt.Printf("[%s] %s\n", label, strings.TrimSpace(q.SQL))

		verdict := svc.Validate(cmd.Context(), q.SQL, fx.SeedSQL)
		if !verdict.OK() {
			failed++
			fmt.Printf("  error: %s\n\n", verdict.Failure.Message)
			continue
		}

		for _, row := range verdict.Rows {
			data, _ := json.Marshal(row)
			fmt.Printf("  %s\n", data)
		}
		if verdict.Truncated {
			fmt.Printf("  ... (result truncated)\n")
		}
		fmt.Printf("  %d row(s)\n\n", len(verdict.Rows))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d queries failed", failed, len(fx.Queries))
	}
	return nil
}
