package analyze

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/movie-costar/models"
	"github.com/dtnitsch/movie-costar/pkg/analytics"
	"github.com/dtnitsch/movie-costar/pkg/corpus"
	"github.com/dtnitsch/movie-costar/pkg/costar"
	"github.com/dtnitsch/movie-costar/pkg/db"
	"github.com/dtnitsch/movie-costar/pkg/report"
	"github.com/dtnitsch/movie-costar/pkg/storage"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	} else if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(c *cli.Context) (*models.Config, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("corpus") {
		cfg.CorpusFiles = c.StringSlice("corpus")
	}
	if c.IsSet("encoding") {
		cfg.Encoding = c.String("encoding")
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("top") {
		cfg.TopN = c.Int("top")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("sqlite") {
		cfg.SQLitePath = c.String("sqlite")
	}

	if len(cfg.CorpusFiles) == 0 {
		return nil, fmt.Errorf("no corpus files provided via --corpus or config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AnalyzeAction loads the corpus, computes statistics and the co-occurrence
// relation, and writes the full summary.
func AnalyzeAction(c *cli.Context) error {
	return run(c, true)
}

// PairsAction is AnalyzeAction without the single-key statistics.
func PairsAction(c *cli.Context) error {
	return run(c, false)
}

func run(c *cli.Context, withStats bool) error {
	logger := newLogger(c)
	startTime := time.Now()

	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	s := &storage.Storage{}
	loader := &corpus.Loader{
		Storage:  s,
		Encoding: cfg.Encoding,
		Workers:  workers,
		Logger:   logger,
	}
	corp, loadStats, err := loader.Load(c.Context, cfg.CorpusFiles)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	summary := &report.Summary{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Corpus:      loadStats,
		Workers:     min(workers, max(len(corp.Actors), 1)),
	}

	if withStats {
		stats := analytics.Compute(corp, workers)
		summary.Stats = &stats
		summary.TopActors = analytics.TopActors(corp, cfg.TopN)
	}

	logger.Info("Starting co-occurrence reduction", "actors", len(corp.Actors), "movies", len(corp.Movies), "workers", workers)
	reduceStart := time.Now()
	rel, err := costar.Reduce(corp.Movies, corp.Actors, workers)
	if err != nil {
		return fmt.Errorf("failed to reduce co-occurrences: %w", err)
	}
	logger.Info("Co-occurrence reduction finished", "pairs", rel.Len(), "owners", rel.Owners(), "duration", time.Since(reduceStart).String())

	summary.Pairs = rel.Len()
	summary.PairOwners = rel.Owners()

	maxPair, err := costar.MaxPair(rel)
	if err != nil {
		if errors.Is(err, costar.ErrEmptyCorpus) {
			logger.Error("No actor pair co-stars in the corpus", "movies", len(corp.Movies))
		}
		return fmt.Errorf("failed to find the most seen pair: %w", err)
	}
	summary.MaxPair = &maxPair

	maxPartner, err := costar.MaxPartner(rel)
	if err != nil {
		return fmt.Errorf("failed to find the best partner: %w", err)
	}
	summary.MaxPartner = &maxPartner
	summary.TopPairs = costar.TopPairs(rel, cfg.TopN)

	if cfg.SQLitePath != "" {
		if err := exportSQLite(logger, cfg.SQLitePath, rel, summary); err != nil {
			return err
		}
	}

	summary.ElapsedSeconds = time.Since(startTime).Seconds()
	return writeSummary(c, logger, s, cfg, summary)
}

func exportSQLite(logger *slog.Logger, path string, rel *costar.Relation, summary *report.Summary) error {
	database, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open report database: %w", err)
	}
	defer database.Close()

	n, err := database.InsertPairs(rel)
	if err != nil {
		return err
	}
	if err := database.InsertBestPartners(costar.BestPartners(rel)); err != nil {
		return err
	}

	runStats := map[string]string{
		"generated_at": summary.GeneratedAt,
		"movies":       strconv.Itoa(summary.Corpus.Records - summary.Corpus.Duplicates),
		"pairs":        strconv.Itoa(summary.Pairs),
		"pair_owners":  strconv.Itoa(summary.PairOwners),
		"workers":      strconv.Itoa(summary.Workers),
	}
	if summary.MaxPair != nil {
		runStats["max_pair"] = fmt.Sprintf("%s|%s|%d", summary.MaxPair.A, summary.MaxPair.B, summary.MaxPair.Count)
	}
	for k, v := range runStats {
		if err := database.SetRunStat(k, v); err != nil {
			return err
		}
	}

	logger.Info("Exported report database", "path", database.Path(), "pairs", n)
	return nil
}

func writeSummary(c *cli.Context, logger *slog.Logger, s *storage.Storage, cfg *models.Config, summary *report.Summary) error {
	data, err := report.Marshal(summary, cfg.Format)
	if err != nil {
		return err
	}

	if cfg.OutputPath == "" {
		_, err := c.App.Writer.Write(data)
		return err
	}

	if err := s.SaveFile(cfg.OutputPath, data); err != nil {
		return err
	}
	logger.Info("Summary saved", "path", cfg.OutputPath, "format", cfg.Format)
	fmt.Fprintf(c.App.ErrWriter, "Summary saved to: %s\n", cfg.OutputPath)
	return nil
}
