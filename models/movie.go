package models

import "fmt"

// MovieKey is the dedup key of the movie set.
type MovieKey struct {
	Title       string
	ReleaseYear int
}

func (k MovieKey) String() string {
	return fmt.Sprintf("%s (%d)", k.Title, k.ReleaseYear)
}

// Movie is one corpus record. Cast members are unique and shared by pointer
// with every other movie that casts them. Movies are not modified once the
// corpus is built.
type Movie struct {
	Title       string   `json:"title" yaml:"title"`
	ReleaseYear int      `json:"release_year" yaml:"release_year"`
	Cast        []*Actor `json:"cast" yaml:"cast"`
}

// Key returns the (title, release year) pair identifying the movie.
func (m *Movie) Key() MovieKey {
	return MovieKey{Title: m.Title, ReleaseYear: m.ReleaseYear}
}
