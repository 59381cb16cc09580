package corpus

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dtnitsch/movie-costar/pkg/storage"
)

// LoadStats summarizes a multi-file load.
type LoadStats struct {
	Files      int   `json:"files" yaml:"files"`
	Lines      int   `json:"lines" yaml:"lines"`
	Records    int   `json:"records" yaml:"records"`
	Skipped    int   `json:"skipped" yaml:"skipped"`
	Duplicates int   `json:"duplicates" yaml:"duplicates"`
	Bytes      int64 `json:"bytes" yaml:"bytes"`
}

// Loader reads corpus files concurrently and builds one Corpus from them.
type Loader struct {
	Storage  *storage.Storage
	Encoding string
	Workers  int
	Logger   *slog.Logger
}

// Load parses files in parallel, then adds their records in argument order,
// so the corpus does not depend on which file finished first.
func (l *Loader) Load(ctx context.Context, files []string) (*Corpus, LoadStats, error) {
	stats := LoadStats{Files: len(files)}
	if len(files) == 0 {
		return nil, stats, fmt.Errorf("no corpus files given")
	}

	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := l.Storage
	if s == nil {
		s = &storage.Storage{}
	}

	parsed := make([][]Record, len(files))
	perFile := make([]ReadStats, len(files))
	sizes := make([]int64, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	if l.Workers > 0 {
		g.SetLimit(l.Workers)
	}
	for i, path := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if fs, err := s.GetFileStats(path); err == nil {
				sizes[i] = fs.SizeBytes
			}
			rc, err := s.OpenText(path, l.Encoding)
			if err != nil {
				return fmt.Errorf("failed to open corpus %s: %w", path, err)
			}
			defer rc.Close()

			records, rs, err := ReadRecords(rc, path)
			if err != nil {
				return err
			}
			parsed[i] = records
			perFile[i] = rs
			logger.Debug("Parsed corpus file", "path", path, "records", rs.Records, "skipped", rs.Skipped)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats, err
	}

	b := NewBuilder()
	for i, records := range parsed {
		stats.Lines += perFile[i].Lines
		stats.Skipped += perFile[i].Skipped
		stats.Bytes += sizes[i]
		for _, rec := range records {
			if _, err := b.Add(rec.Title, rec.ReleaseYear, rec.Cast); err != nil {
				return nil, stats, fmt.Errorf("%s: %w", files[i], err)
			}
			stats.Records++
		}
	}
	stats.Duplicates = b.Duplicates()

	c := b.Build()
	logger.Info("Corpus loaded", "files", stats.Files, "movies", len(c.Movies), "actors", len(c.Actors), "skipped", stats.Skipped, "duplicates", stats.Duplicates)
	return c, stats, nil
}
