// Package validate wires the admission filter to a sandbox executor.
package validate

import (
	"context"

	"github.com/michaelbrown/sqlgate/internal/admission"
	"github.com/michaelbrown/sqlgate/internal/sandbox"
)

// Service validates untrusted queries against caller-supplied seed data.
// It holds no per-request state; concurrent calls are independent.
type Service struct {
	exec sandbox.Executor
}

// New creates a Service backed by the given executor.
func New(exec sandbox.Executor) *Service {
	return &Service{exec: exec}
}

// Validate admits the query and, if allowed, runs it in a fresh sandbox
// seeded with seed. Rejected queries never reach the executor.
func (s *Service) Validate(ctx context.Context, query, seed string) sandbox.Verdict {
	cleaned, err := admission.Admit(query)
	if err != nil {
		return sandbox.Fail(sandbox.FailAdmission, err.Error())
	}
	return s.exec.Execute(ctx, sandbox.ExecRequest{Query: cleaned, Seed: seed})
}
