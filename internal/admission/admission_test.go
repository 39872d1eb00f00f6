package admission

import (
	"errors"
	"testing"
)

func TestAdmitForbiddenKeywords(t *testing.T) {
	queries := []string{
		"DROP TABLE t;",
		"drop table t",
		"INSERT INTO t VALUES (1)",
		"insert into t values (1)",
		"UpDaTe t SET x = 1",
		"DELETE FROM t",
		"ALTER TABLE t ADD COLUMN y INT",
		"ATTACH DATABASE 'other.db' AS other",
		"PRAGMA table_info(t)",
		"SELECT 1 WHERE EXISTS (SELECT 1); DELETE FROM t",
	}
	for _, q := range queries {
		if _, err := Admit(q); !errors.Is(err, ErrForbiddenKeywords) {
			t.Errorf("Admit(%q) = %v, want ErrForbiddenKeywords", q, err)
		}
	}
}

func TestAdmitKeywordInStringLiteral(t *testing.T) {
	// Over-blocking is deliberate: literals are not distinguished.
	if _, err := Admit("SELECT 'please do not DELETE me'"); !errors.Is(err, ErrForbiddenKeywords) {
		t.Errorf("keyword inside literal should be rejected, got %v", err)
	}
}

func TestAdmitKeywordInsideIdentifier(t *testing.T) {
	// Word-boundary matching: identifiers merely containing a keyword pass.
	for _, q := range []string{
		"SELECT updated_at FROM t",
		"SELECT * FROM deletions",
		"SELECT dropped FROM t",
	} {
		if _, err := Admit(q); err != nil {
			t.Errorf("Admit(%q) = %v, want allowed", q, err)
		}
	}
}

func TestAdmitStripsOneTrailingTerminator(t *testing.T) {
	got, err := Admit("  SELECT x FROM t;  ")
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if got != "SELECT x FROM t" {
		t.Errorf("cleaned query = %q, want %q", got, "SELECT x FROM t")
	}
}

func TestAdmitDoubleTerminatorRejected(t *testing.T) {
	// Only one trailing terminator is permitted; the second is never
	// silently stripped.
	if _, err := Admit("SELECT 1;;"); !errors.Is(err, ErrMultipleStatements) {
		t.Errorf("Admit(\"SELECT 1;;\") = %v, want ErrMultipleStatements", err)
	}
}

func TestAdmitChainedStatementsRejected(t *testing.T) {
	if _, err := Admit("SELECT 1; SELECT 2;"); !errors.Is(err, ErrMultipleStatements) {
		t.Errorf("chained statements = %v, want ErrMultipleStatements", err)
	}
}

func TestAdmitEmptyQueryAllowed(t *testing.T) {
	for _, q := range []string{"", "   ", ";"} {
		got, err := Admit(q)
		if err != nil {
			t.Errorf("Admit(%q) = %v, want allowed", q, err)
		}
		if got != "" {
			t.Errorf("Admit(%q) cleaned = %q, want empty", q, got)
		}
	}
}

func TestAdmitPlainSelectUnchanged(t *testing.T) {
	q := "SELECT x, y FROM t WHERE x > 1 ORDER BY y"
	got, err := Admit(q)
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if got != q {
		t.Errorf("cleaned query = %q, want unchanged", got)
	}
}
