package costar

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/dtnitsch/movie-costar/models"
)

type movieSpec struct {
	title string
	year  int
	cast  []string
}

// buildCorpus interns actors by last name and returns the movies with the
// sorted actor sequence.
func buildCorpus(t *testing.T, specs ...movieSpec) ([]*models.Movie, []models.Actor) {
	t.Helper()

	interned := make(map[models.Actor]*models.Actor)
	var actors []models.Actor
	movies := make([]*models.Movie, 0, len(specs))
	for _, s := range specs {
		m := &models.Movie{Title: s.title, ReleaseYear: s.year}
		for _, name := range s.cast {
			a := models.NewActor(name, "")
			ptr, ok := interned[a]
			if !ok {
				ptr = &a
				interned[a] = ptr
				actors = append(actors, a)
			}
			m.Cast = append(m.Cast, ptr)
		}
		movies = append(movies, m)
	}
	models.SortActors(actors)
	return movies, actors
}

// randomCorpus builds a deterministic pseudo-random corpus.
func randomCorpus(t *testing.T, actorCount, movieCount, maxCast int) ([]*models.Movie, []models.Actor) {
	t.Helper()

	rng := rand.New(rand.NewPCG(42, 7))
	specs := make([]movieSpec, movieCount)
	for i := range specs {
		size := 1 + rng.IntN(maxCast)
		picked := rng.Perm(actorCount)[:size]
		cast := make([]string, size)
		for j, p := range picked {
			cast[j] = fmt.Sprintf("Actor%03d", p)
		}
		specs[i] = movieSpec{title: fmt.Sprintf("Movie %d", i), year: 1950 + i%40, cast: cast}
	}
	return buildCorpus(t, specs...)
}

type pairKey struct{ a, b models.Actor }

// bruteForce counts co-occurrences pair by pair, movie by movie.
func bruteForce(movies []*models.Movie) map[pairKey]int {
	counts := make(map[pairKey]int)
	for _, m := range movies {
		for i := 0; i < len(m.Cast); i++ {
			for j := i + 1; j < len(m.Cast); j++ {
				a, b := *m.Cast[i], *m.Cast[j]
				if models.ActorLess(b, a) {
					a, b = b, a
				}
				counts[pairKey{a, b}]++
			}
		}
	}
	return counts
}

func actor(name string) models.Actor {
	return models.NewActor(name, "")
}

func mustReduce(t *testing.T, movies []*models.Movie, actors []models.Actor, parallelism int) *Relation {
	t.Helper()

	rel, err := Reduce(movies, actors, parallelism)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	return rel
}
