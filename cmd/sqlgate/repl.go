package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/michaelbrown/sqlgate/internal/config"
	"github.com/michaelbrown/sqlgate/internal/sandbox"
	"github.com/michaelbrown/sqlgate/internal/validate"
)

var seedFlag string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt for trying queries against a seed file",
	Long: `Start an interactive prompt. Every line goes through the full
validation path: admission check, then execution in a fresh sandbox seeded
from the given file. No state carries over between lines.

Examples:
  sqlgate repl
  sqlgate repl --seed fixtures/albums.sql`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVar(&seedFlag, "seed", "", "SQL file seeding each sandbox")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	seed := ""
	if seedFlag != "" {
		data, err := os.ReadFile(seedFlag)
		if err != nil {
			return fmt.Errorf("reading seed file: %w", err)
		}
		seed = string(data)
	}

	svc := validate.New(sandbox.NewSQLiteSandbox(cfg.Policy()))

	fmt.Printf("sqlgate - every line runs in a fresh sandbox\n")
	if seedFlag != "" {
		fmt.Printf("Seed: %s\n", seedFlag)
	}
	fmt.Printf("Ctrl+D to exit\n\n")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sql> ",
		HistoryFile:     "/tmp/sqlgate_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	for {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("bye")
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		verdict := svc.Validate(context.Background(), input, seed)
		if !verdict.OK() {
			fmt.Printf("error: %s\n\n", verdict.Failure.Message)
			continue
		}

		if len(verdict.Columns) > 0 {
			fmt.Printf("%s\n", strings.Join(verdict.Columns, " | "))
		}
		for _, row := range verdict.Rows {
			data, _ := json.Marshal(row)
			fmt.Printf("%s\n", data)
		}
		if verdict.Truncated {
			fmt.Printf("... (result truncated)\n")
		}
		fmt.Printf("%d row(s)\n\n", len(verdict.Rows))
	}
}
