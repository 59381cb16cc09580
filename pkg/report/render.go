package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/movie-costar/pkg/costar"
)

// Marshal encodes the summary as json, yaml or text.
func Marshal(s *Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshalling summary: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("error marshalling summary: %w", err)
		}
		return data, nil
	case "text":
		var sb strings.Builder
		writeText(&sb, s)
		return []byte(sb.String()), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

func writeText(w io.Writer, s *Summary) {
	fmt.Fprintf(w, "# records = %s\n", comma(s.Corpus.Records))
	if st := s.Stats; st != nil {
		fmt.Fprintf(w, "# actors = %s\n", comma(st.Actors))
		fmt.Fprintf(w, "# movies = %s\n", comma(st.Movies))
		fmt.Fprintf(w, "# release years = %d (from %d to %d)\n", st.ReleaseYears, st.FirstYear, st.LastYear)
		if st.CommonCastSize != nil {
			fmt.Fprintf(w, "Most common cast size: %d actors (%s movies)\n", st.CommonCastSize.CastSize, comma(st.CommonCastSize.Movies))
		}
		if st.BusiestYear != nil {
			fmt.Fprintf(w, "Year with the most movies: %d (%s movies)\n", st.BusiestYear.Year, comma(st.BusiestYear.Movies))
		}
		if st.ProlificActor != nil {
			fmt.Fprintf(w, "Actor in the most movies: %s (%s movies)\n", st.ProlificActor.Actor, comma(st.ProlificActor.Movies))
		}
		if st.BestYearForActor != nil {
			b := st.BestYearForActor
			fmt.Fprintf(w, "Most movies by one actor in a year: %s, %d (%s movies)\n", b.Actor, b.Year, comma(b.Movies))
		}
	}

	fmt.Fprintf(w, "# pairs = %s over %s owners (%d workers)\n", comma(s.Pairs), comma(s.PairOwners), s.Workers)
	if s.MaxPair != nil {
		fmt.Fprintf(w, "Most seen actor duo: %s\n", formatPair(*s.MaxPair))
	}
	if s.MaxPartner != nil && (s.MaxPair == nil || *s.MaxPartner != *s.MaxPair) {
		fmt.Fprintf(w, "Greatest best partner: %s\n", formatPair(*s.MaxPartner))
	}
	for i, p := range s.TopPairs {
		fmt.Fprintf(w, "%s. %s\n", humanize.Ordinal(i+1), formatPair(p))
	}
	fmt.Fprintf(w, "Corpus: %s in %d files, %s skipped, %s duplicates\n",
		humanize.Bytes(uint64(s.Corpus.Bytes)), s.Corpus.Files, comma(s.Corpus.Skipped), comma(s.Corpus.Duplicates))
	fmt.Fprintf(w, "T = %.3fs\n", s.ElapsedSeconds)
}

func formatPair(p costar.PairResult) string {
	return fmt.Sprintf("%s & %s: %s movies", p.A, p.B, comma(p.Count))
}
