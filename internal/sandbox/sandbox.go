package sandbox

import "context"

// ExecRequest describes one sandboxed query execution.
type ExecRequest struct {
	Query string // Admitted query to run
	Seed  string // Batch SQL establishing the fixture schema and data
}

// FailureKind classifies why a validation did not produce rows.
type FailureKind string

const (
	FailAdmission FailureKind = "admission"
	FailSeed      FailureKind = "seed"
	FailExecution FailureKind = "execution"
	FailTimeout   FailureKind = "timeout"
	FailInternal  FailureKind = "internal"
)

// Failure carries the reason a verdict is an error.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Verdict is the total outcome of a validation: either captured rows or a
// failure, never both.
type Verdict struct {
	Columns   []string
	Rows      []Row
	Truncated bool // result set was capped below its true size
	Failure   *Failure
}

// OK reports whether the verdict carries rows rather than a failure.
func (v Verdict) OK() bool {
	return v.Failure == nil
}

// Fail builds an error verdict.
func Fail(kind FailureKind, message string) Verdict {
	return Verdict{Failure: &Failure{Kind: kind, Message: message}}
}

// Executor runs an admitted query in an isolated environment.
type Executor interface {
	Execute(ctx context.Context, req ExecRequest) Verdict
}
