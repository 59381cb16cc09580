// Package costar computes the actor co-occurrence relation of a movie corpus
// and the maximum-pair reductions over it.
//
// The reducer splits the sorted actor sequence into contiguous shards. A
// worker only records pairs owned by actors of its own shard, so partial
// relations never share an outer key and need no locking. Partials are
// summed with Merge once every worker is done.
package costar

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/dtnitsch/movie-costar/models"
)

// Shard is a contiguous range [Lo, Hi) of positions in the sorted actor
// sequence.
type Shard struct {
	ID int
	Lo int
	Hi int
}

// Len returns the number of actors in the shard.
func (s Shard) Len() int {
	return s.Hi - s.Lo
}

// Partition splits n positions into at most parallelism contiguous shards
// whose sizes differ by at most one. parallelism <= 0 means GOMAXPROCS.
func Partition(n, parallelism int) []Shard {
	if n <= 0 {
		return nil
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	parallelism = min(parallelism, n)

	shards := make([]Shard, parallelism)
	size, rem := n/parallelism, n%parallelism
	lo := 0
	for i := range shards {
		hi := lo + size
		if i < rem {
			hi++
		}
		shards[i] = Shard{ID: i, Lo: lo, Hi: hi}
		lo = hi
	}
	return shards
}

// index is the read-only view of the corpus shared by all workers.
type index struct {
	actors   []models.Actor
	position map[models.Actor]int
	// postings[i] lists the movies casting actors[i], in corpus order.
	postings [][]*models.Movie
}

func buildIndex(movies []*models.Movie, actors []models.Actor) (*index, error) {
	idx := &index{
		actors:   actors,
		position: make(map[models.Actor]int, len(actors)),
		postings: make([][]*models.Movie, len(actors)),
	}

	for i, a := range actors {
		if i > 0 && models.CompareActors(actors[i-1], a) >= 0 {
			return nil, fmt.Errorf("%w: actors not strictly sorted at %q, %q", ErrPrecondition, actors[i-1], a)
		}
		idx.position[a] = i
	}

	for _, m := range movies {
		if m == nil {
			return nil, fmt.Errorf("%w: nil movie", ErrPrecondition)
		}
		if len(m.Cast) == 0 {
			return nil, fmt.Errorf("%w: movie %s has an empty cast", ErrPrecondition, m.Key())
		}
		seen := make(map[int]struct{}, len(m.Cast))
		for _, c := range m.Cast {
			if c == nil {
				return nil, fmt.Errorf("%w: movie %s has a nil cast member", ErrPrecondition, m.Key())
			}
			pos, ok := idx.position[*c]
			if !ok {
				return nil, fmt.Errorf("%w: actor %q of movie %s is missing from the actor sequence", ErrPrecondition, *c, m.Key())
			}
			if _, dup := seen[pos]; dup {
				return nil, fmt.Errorf("%w: actor %q cast twice in movie %s", ErrPrecondition, *c, m.Key())
			}
			seen[pos] = struct{}{}
			idx.postings[pos] = append(idx.postings[pos], m)
		}
	}

	return idx, nil
}

// scan builds the partial relation for one shard. Only co-stars sorting after
// the owner are recorded, which visits every unordered pair exactly once.
func (idx *index) scan(s Shard) *Relation {
	partial := NewRelation()
	for i := s.Lo; i < s.Hi; i++ {
		owner := idx.actors[i]
		for _, m := range idx.postings[i] {
			for _, c := range m.Cast {
				if idx.position[*c] > i {
					partial.add(owner, *c, 1)
				}
			}
		}
	}
	return partial
}

type shardResult struct {
	shard    Shard
	relation *Relation
}

// worker processes shards from jobs until the channel is closed.
func worker(idx *index, wg *sync.WaitGroup, jobs <-chan Shard, results chan<- shardResult) {
	defer wg.Done()
	for s := range jobs {
		results <- shardResult{shard: s, relation: idx.scan(s)}
	}
}

// Reduce computes the co-occurrence relation of movies. actors must be the
// distinct cast members of movies sorted by models.CompareActors; it is only
// read. parallelism bounds the number of workers (<= 0 means GOMAXPROCS).
//
// Malformed input returns an error wrapping ErrPrecondition before any work
// starts. An empty corpus yields an empty relation. The result, including its
// iteration order, does not depend on parallelism.
func Reduce(movies []*models.Movie, actors []models.Actor, parallelism int) (*Relation, error) {
	idx, err := buildIndex(movies, actors)
	if err != nil {
		return nil, err
	}

	shards := Partition(len(actors), parallelism)
	if len(shards) == 0 {
		return NewRelation(), nil
	}

	var wg sync.WaitGroup
	jobs := make(chan Shard, len(shards))
	results := make(chan shardResult, len(shards))

	for w := 0; w < len(shards); w++ {
		wg.Add(1)
		go worker(idx, &wg, jobs, results)
	}

	for _, s := range shards {
		jobs <- s
	}
	close(jobs)

	wg.Wait()
	close(results)

	partials := make([]*Relation, len(shards))
	for res := range results {
		partials[res.shard.ID] = res.relation
	}

	// Shard order keeps owners in sorted actor order for any shard count.
	final := NewRelation()
	for _, p := range partials {
		Merge(final, p)
	}
	return final, nil
}
