package analyze

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/movie-costar/models"
	"github.com/dtnitsch/movie-costar/pkg/costar"
	"github.com/dtnitsch/movie-costar/pkg/report"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := &cli.App{
		Name:           "movie-costar",
		Commands:       Commands(),
		Writer:         &out,
		ErrWriter:      io.Discard,
		ExitErrHandler: func(*cli.Context, error) {},
	}
	err := app.Run(append([]string{"movie-costar"}, args...))
	return out.String(), err
}

func writeCorpus(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "movies.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}
	return path
}

const scenarioCorpus = "A (1990)/X/Y/Z\nB (1991)/X/Y\n"

func TestAnalyzeAction_JSON(t *testing.T) {
	path := writeCorpus(t, scenarioCorpus)

	out, err := runApp(t, "analyze", "--corpus", path, "--workers", "2", "--quiet")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	var summary report.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("output is not a JSON summary: %v\n%s", err, out)
	}

	want := costar.PairResult{A: models.NewActor("X", ""), B: models.NewActor("Y", ""), Count: 2}
	if summary.MaxPair == nil {
		t.Fatal("summary has no max pair")
	}
	if diff := cmp.Diff(want, *summary.MaxPair); diff != "" {
		t.Errorf("MaxPair mismatch (-want +got):\n%s", diff)
	}
	if summary.Pairs != 3 {
		t.Errorf("Pairs = %d, want 3", summary.Pairs)
	}
	if summary.Stats == nil || summary.Stats.Movies != 2 || summary.Stats.Actors != 3 {
		t.Errorf("Stats = %+v, want 2 movies and 3 actors", summary.Stats)
	}
	if len(summary.TopPairs) != 3 {
		t.Errorf("len(TopPairs) = %d, want 3", len(summary.TopPairs))
	}
}

func TestPairsAction_OmitsStats(t *testing.T) {
	path := writeCorpus(t, scenarioCorpus)

	out, err := runApp(t, "pairs", "--corpus", path, "--top", "1", "--quiet")
	if err != nil {
		t.Fatalf("pairs error = %v", err)
	}

	var summary report.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("output is not a JSON summary: %v", err)
	}
	if summary.Stats != nil {
		t.Errorf("pairs output has stats: %+v", summary.Stats)
	}
	if len(summary.TopPairs) != 1 || summary.TopPairs[0].Count != 2 {
		t.Errorf("TopPairs = %+v, want the X/Y pair only", summary.TopPairs)
	}
}

func TestAnalyzeAction_EmptyRelation(t *testing.T) {
	path := writeCorpus(t, "Solo (2000)/X\n")

	_, err := runApp(t, "analyze", "--corpus", path, "--quiet")
	if !errors.Is(err, costar.ErrEmptyCorpus) {
		t.Errorf("analyze error = %v, want ErrEmptyCorpus", err)
	}
}

func TestAnalyzeAction_ConfigFileAndOverrides(t *testing.T) {
	corpusPath := writeCorpus(t, scenarioCorpus)
	outPath := filepath.Join(t.TempDir(), "out", "summary.json")
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	config := "corpus:\n  - " + corpusPath + "\nformat: yaml\ntop: 1\noutput: " + outPath + "\n"
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	stdout, err := runApp(t, "analyze", "--config", configPath, "--format", "json", "--quiet")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty when --output is configured", stdout)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("summary file not written: %v", err)
	}
	var summary report.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("--format flag did not override config format: %v", err)
	}
	if len(summary.TopPairs) != 1 {
		t.Errorf("len(TopPairs) = %d, want 1 from config", len(summary.TopPairs))
	}
}

func TestAnalyzeAction_SQLiteExport(t *testing.T) {
	corpusPath := writeCorpus(t, scenarioCorpus)
	dbPath := filepath.Join(t.TempDir(), "report.db")

	if _, err := runApp(t, "analyze", "--corpus", corpusPath, "--sqlite", dbPath, "--format", "text", "--quiet"); err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	database, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open exported database: %v", err)
	}
	defer database.Close()

	var pairs, best int
	if err := database.QueryRow("SELECT COUNT(*) FROM pairs").Scan(&pairs); err != nil {
		t.Fatalf("count pairs: %v", err)
	}
	if err := database.QueryRow("SELECT COUNT(*) FROM best_partners").Scan(&best); err != nil {
		t.Fatalf("count best partners: %v", err)
	}
	if pairs != 3 || best != 2 {
		t.Errorf("exported %d pairs and %d best partners, want 3 and 2", pairs, best)
	}

	var maxPair string
	if err := database.QueryRow("SELECT value FROM run_stats WHERE key = 'max_pair'").Scan(&maxPair); err != nil {
		t.Fatalf("read max_pair: %v", err)
	}
	if maxPair != "X|Y|2" {
		t.Errorf("max_pair = %q, want X|Y|2", maxPair)
	}
}

func TestAnalyzeAction_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no corpus", []string{"analyze", "--quiet"}},
		{"missing corpus file", []string{"analyze", "--corpus", filepath.Join(t.TempDir(), "nope.txt"), "--quiet"}},
		{"bad format", []string{"analyze", "--corpus", writeCorpus(t, scenarioCorpus), "--format", "xml", "--quiet"}},
		{"bad encoding", []string{"analyze", "--corpus", writeCorpus(t, scenarioCorpus), "--encoding", "ebcdic", "--quiet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}
