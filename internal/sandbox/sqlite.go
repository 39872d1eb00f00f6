package sandbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// SQLiteSandbox runs queries in throwaway in-memory SQLite databases.
// It holds no per-request state and is safe for concurrent use; every call
// to Execute owns its own database instance for the duration of the call.
type SQLiteSandbox struct {
	Policy Policy
}

// NewSQLiteSandbox creates a sandbox with the given policy.
func NewSQLiteSandbox(policy Policy) *SQLiteSandbox {
	return &SQLiteSandbox{Policy: policy}
}

func (s *SQLiteSandbox) Execute(ctx context.Context, req ExecRequest) Verdict {
	id := uuid.New().String()[:8]

	// Acquire. A plain ":memory:" database is private to its connection, so
	// the instance is unreachable from any other call. Capping the pool at
	// one connection keeps seed and query on the same database.
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		log.Printf("sandbox %s: acquire failed: %v", id, err)
		return Fail(FailInternal, fmt.Sprintf("acquiring sandbox: %v", err))
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		log.Printf("sandbox %s: acquire failed: %v", id, err)
		return Fail(FailInternal, fmt.Sprintf("acquiring sandbox connection: %v", err))
	}
	defer conn.Close()

	// Seed the instance with the caller's fixture batch.
	if req.Seed != "" {
		if _, err := conn.ExecContext(ctx, req.Seed); err != nil {
			return Fail(FailSeed, err.Error())
		}
	}

	// Execute under the wall-clock bound. The driver interrupts the engine
	// when the deadline passes, so a runaway query cannot hang the call.
	queryCtx, cancel := context.WithTimeout(ctx, s.Policy.QueryTimeout)
	defer cancel()

	rows, err := conn.QueryContext(queryCtx, req.Query)
	if err != nil {
		return s.queryFailure(queryCtx, err)
	}
	defer rows.Close()

	verdict, err := capture(rows, s.Policy.MaxRows)
	if err != nil {
		return s.queryFailure(queryCtx, err)
	}
	return verdict
}

// queryFailure folds an engine error into a verdict, distinguishing the
// execution bound being exceeded from ordinary query errors.
func (s *SQLiteSandbox) queryFailure(ctx context.Context, err error) Verdict {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Fail(FailTimeout, fmt.Sprintf("query timed out after %s", s.Policy.QueryTimeout))
	}
	return Fail(FailExecution, err.Error())
}

// capture collects at most maxRows rows, probing one row further to detect
// truncation.
func capture(rows *sql.Rows, maxRows int) (Verdict, error) {
	cols, err := rows.Columns()
	if err != nil {
		return Verdict{}, err
	}

	var out []Row
	for len(out) < maxRows && rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return Verdict{}, err
		}
		row := make(Row, len(cols))
		for i, v := range raw {
			row[i] = fromDriver(v)
		}
		out = append(out, row)
	}

	truncated := len(out) == maxRows && rows.Next()
	if err := rows.Err(); err != nil {
		return Verdict{}, err
	}

	return Verdict{Columns: cols, Rows: out, Truncated: truncated}, nil
}
