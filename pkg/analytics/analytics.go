package analytics

import (
	"cmp"
	"runtime"
	"sync"

	"github.com/dtnitsch/movie-costar/models"
	"github.com/dtnitsch/movie-costar/pkg/corpus"
	"github.com/dtnitsch/movie-costar/pkg/mapreduce"
)

// YearCount is a release year with the number of movies released that year.
type YearCount struct {
	Year   int `json:"year" yaml:"year"`
	Movies int `json:"movies" yaml:"movies"`
}

// CastSizeCount is a cast size with the number of movies of that size.
type CastSizeCount struct {
	CastSize int `json:"cast_size" yaml:"cast_size"`
	Movies   int `json:"movies" yaml:"movies"`
}

// ActorCount is an actor with a movie count, optionally within one year.
type ActorCount struct {
	Actor  models.Actor `json:"actor" yaml:"actor"`
	Year   int          `json:"year,omitempty" yaml:"year,omitempty"`
	Movies int          `json:"movies" yaml:"movies"`
}

// Stats holds the single-key aggregates of a corpus.
type Stats struct {
	Actors       int `json:"actors" yaml:"actors"`
	Movies       int `json:"movies" yaml:"movies"`
	ReleaseYears int `json:"release_years" yaml:"release_years"`
	FirstYear    int `json:"first_year,omitempty" yaml:"first_year,omitempty"`
	LastYear     int `json:"last_year,omitempty" yaml:"last_year,omitempty"`

	CommonCastSize   *CastSizeCount `json:"most_common_cast_size,omitempty" yaml:"most_common_cast_size,omitempty"`
	BusiestYear      *YearCount     `json:"busiest_year,omitempty" yaml:"busiest_year,omitempty"`
	ProlificActor    *ActorCount    `json:"most_prolific_actor,omitempty" yaml:"most_prolific_actor,omitempty"`
	BestYearForActor *ActorCount    `json:"best_actor_year,omitempty" yaml:"best_actor_year,omitempty"`
}

type actorYear struct {
	actor models.Actor
	year  int
}

func compareActorYear(a, b actorYear) int {
	if c := cmp.Compare(a.year, b.year); c != 0 {
		return c
	}
	return models.CompareActors(a.actor, b.actor)
}

// partial is the per-batch output of the map phase.
type partial struct {
	years     map[int]int
	castSizes map[int]int
	actors    map[models.Actor]int
	perYear   map[actorYear]int
}

func castOf(m *models.Movie) []models.Actor {
	out := make([]models.Actor, len(m.Cast))
	for i, a := range m.Cast {
		out[i] = *a
	}
	return out
}

func mapBatch(movies []*models.Movie) partial {
	return partial{
		years:     mapreduce.Map(movies, func(m *models.Movie) int { return m.ReleaseYear }),
		castSizes: mapreduce.Map(movies, func(m *models.Movie) int { return len(m.Cast) }),
		actors:    mapreduce.MapMany(movies, castOf),
		perYear: mapreduce.MapMany(movies, func(m *models.Movie) []actorYear {
			out := make([]actorYear, len(m.Cast))
			for i, a := range m.Cast {
				out[i] = actorYear{actor: *a, year: m.ReleaseYear}
			}
			return out
		}),
	}
}

// Compute maps batches of movies in parallel and reduces them into Stats.
// Ties resolve to the smallest year, size or actor.
func Compute(c *corpus.Corpus, workers int) Stats {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	batches := mapreduce.Chunk(c.Movies, workers)
	partials := make([]partial, len(batches))

	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			partials[i] = mapBatch(batch)
		}()
	}
	wg.Wait()

	var years, castSizes []map[int]int
	var actors []map[models.Actor]int
	var perYear []map[actorYear]int
	for _, p := range partials {
		years = append(years, p.years)
		castSizes = append(castSizes, p.castSizes)
		actors = append(actors, p.actors)
		perYear = append(perYear, p.perYear)
	}

	stats := Stats{
		Actors: len(c.Actors),
		Movies: len(c.Movies),
	}

	yearCounts := mapreduce.Reduce(years)
	stats.ReleaseYears = len(yearCounts)
	first := true
	for year := range yearCounts {
		if first || year < stats.FirstYear {
			stats.FirstYear = year
		}
		if first || year > stats.LastYear {
			stats.LastYear = year
		}
		first = false
	}

	if kv, ok := mapreduce.Max(yearCounts, cmp.Compare[int]); ok {
		stats.BusiestYear = &YearCount{Year: kv.Key, Movies: kv.Count}
	}
	if kv, ok := mapreduce.Max(mapreduce.Reduce(castSizes), cmp.Compare[int]); ok {
		stats.CommonCastSize = &CastSizeCount{CastSize: kv.Key, Movies: kv.Count}
	}
	if kv, ok := mapreduce.Max(mapreduce.Reduce(actors), models.CompareActors); ok {
		stats.ProlificActor = &ActorCount{Actor: kv.Key, Movies: kv.Count}
	}
	if kv, ok := mapreduce.Max(mapreduce.Reduce(perYear), compareActorYear); ok {
		stats.BestYearForActor = &ActorCount{Actor: kv.Key.actor, Year: kv.Key.year, Movies: kv.Count}
	}

	return stats
}

// TopYears returns the n years with the most releases.
func TopYears(c *corpus.Corpus, n int) []YearCount {
	counts := mapreduce.Map(c.Movies, func(m *models.Movie) int { return m.ReleaseYear })
	top := mapreduce.TopN(counts, n, cmp.Compare[int])

	out := make([]YearCount, len(top))
	for i, kv := range top {
		out[i] = YearCount{Year: kv.Key, Movies: kv.Count}
	}
	return out
}

// TopActors returns the n actors cast in the most movies.
func TopActors(c *corpus.Corpus, n int) []ActorCount {
	counts := mapreduce.MapMany(c.Movies, castOf)
	top := mapreduce.TopN(counts, n, models.CompareActors)

	out := make([]ActorCount, len(top))
	for i, kv := range top {
		out[i] = ActorCount{Actor: kv.Key, Movies: kv.Count}
	}
	return out
}
