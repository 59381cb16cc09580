package corpus

import (
	"fmt"

	"github.com/dtnitsch/movie-costar/models"
	"github.com/dtnitsch/movie-costar/pkg/costar"
)

// Corpus is a loaded, immutable movie set with its sorted actor sequence.
type Corpus struct {
	// Movies in load order, deduplicated by (title, release year).
	Movies []*models.Movie
	// Actors is every distinct cast member, sorted by models.CompareActors.
	Actors []models.Actor
}

// Builder interns actors and deduplicates movies while a corpus is loaded.
// It is not safe for concurrent use.
type Builder struct {
	actors     map[models.Actor]*models.Actor
	movies     []*models.Movie
	keys       map[models.MovieKey]struct{}
	duplicates int
}

func NewBuilder() *Builder {
	return &Builder{
		actors: make(map[models.Actor]*models.Actor),
		keys:   make(map[models.MovieKey]struct{}),
	}
}

// Add adds a movie. An actor listed twice is cast once. A movie whose
// (title, year) was already added is dropped and reported as not added.
// An empty cast violates the corpus precondition.
func (b *Builder) Add(title string, year int, cast []models.Actor) (bool, error) {
	key := models.MovieKey{Title: title, ReleaseYear: year}
	if len(cast) == 0 {
		return false, fmt.Errorf("%w: movie %s has an empty cast", costar.ErrPrecondition, key)
	}
	if _, dup := b.keys[key]; dup {
		b.duplicates++
		return false, nil
	}

	movie := &models.Movie{Title: title, ReleaseYear: year, Cast: make([]*models.Actor, 0, len(cast))}
	seen := make(map[models.Actor]struct{}, len(cast))
	for _, a := range cast {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		movie.Cast = append(movie.Cast, b.intern(a))
	}

	b.keys[key] = struct{}{}
	b.movies = append(b.movies, movie)
	return true, nil
}

func (b *Builder) intern(a models.Actor) *models.Actor {
	if ptr, ok := b.actors[a]; ok {
		return ptr
	}
	ptr := &a
	b.actors[a] = ptr
	return ptr
}

// Duplicates returns how many movies were dropped as repeats.
func (b *Builder) Duplicates() int {
	return b.duplicates
}

// Build returns the corpus. The builder must not be used afterwards.
func (b *Builder) Build() *Corpus {
	actors := make([]models.Actor, 0, len(b.actors))
	for a := range b.actors {
		actors = append(actors, a)
	}
	models.SortActors(actors)

	return &Corpus{Movies: b.movies, Actors: actors}
}
