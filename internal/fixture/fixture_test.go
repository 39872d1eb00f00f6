package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFixture(t, `
name: top-three
seed_sql: |
  CREATE TABLE t(x INT);
  INSERT INTO t VALUES (1),(2),(3);
queries:
  - sql: SELECT x FROM t ORDER BY x;
    note: reference answer
  - sql: SELECT count(*) FROM t;
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Name != "top-three" {
		t.Errorf("name = %q, want top-three", f.Name)
	}
	if !strings.Contains(f.SeedSQL, "CREATE TABLE t") {
		t.Errorf("seed_sql = %q, missing CREATE TABLE", f.SeedSQL)
	}
	if len(f.Queries) != 2 {
		t.Fatalf("got %d queries, want 2", len(f.Queries))
	}
	if f.Queries[0].Note != "reference answer" {
		t.Errorf("note = %q", f.Queries[0].Note)
	}
}

func TestLoadNoQueries(t *testing.T) {
	path := writeFixture(t, "name: empty\nseed_sql: SELECT 1\n")
	if _, err := Load(path); err == nil {
		t.Fatal("fixture without queries should error")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeFixture(t, "queries: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed YAML should error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing file should error")
	}
}
