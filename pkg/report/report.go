package report

import (
	"github.com/dtnitsch/movie-costar/pkg/analytics"
	"github.com/dtnitsch/movie-costar/pkg/corpus"
	"github.com/dtnitsch/movie-costar/pkg/costar"
)

// Summary is the outcome of one analysis run. It gives the headline results
// without requiring readers to walk the full relation.
type Summary struct {
	GeneratedAt    string                 `json:"generated_at" yaml:"generated_at"`
	Corpus         corpus.LoadStats       `json:"corpus" yaml:"corpus"`
	Stats          *analytics.Stats       `json:"stats,omitempty" yaml:"stats,omitempty"`
	TopActors      []analytics.ActorCount `json:"top_actors,omitempty" yaml:"top_actors,omitempty"`
	Workers        int                    `json:"workers" yaml:"workers"`
	Pairs          int                    `json:"pairs" yaml:"pairs"`
	PairOwners     int                    `json:"pair_owners" yaml:"pair_owners"`
	MaxPair        *costar.PairResult     `json:"max_pair,omitempty" yaml:"max_pair,omitempty"`
	MaxPartner     *costar.PairResult     `json:"max_partner,omitempty" yaml:"max_partner,omitempty"`
	TopPairs       []costar.PairResult    `json:"top_pairs,omitempty" yaml:"top_pairs,omitempty"`
	ElapsedSeconds float64                `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}
