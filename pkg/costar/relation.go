package costar

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dtnitsch/movie-costar/models"
)

type partners = orderedmap.OrderedMap[models.Actor, int]

// PairResult is one unordered actor pair with the number of movies that cast
// both. A always sorts before B.
type PairResult struct {
	A     models.Actor `json:"actor_a" yaml:"actor_a"`
	B     models.Actor `json:"actor_b" yaml:"actor_b"`
	Count int          `json:"count" yaml:"count"`
}

// Relation is the sparse co-occurrence relation. Each unordered pair is stored
// once, under the actor that sorts first, with a count of at least one.
// Iteration follows construction order: owners in the order they were first
// added, then each owner's partners in the order they were first added.
type Relation struct {
	owners *orderedmap.OrderedMap[models.Actor, *partners]
	pairs  int
}

// NewRelation returns an empty relation, the identity of Merge.
func NewRelation() *Relation {
	return &Relation{owners: orderedmap.New[models.Actor, *partners]()}
}

// add records n more shared movies for the pair owned by owner.
func (r *Relation) add(owner, partner models.Actor, n int) {
	inner, ok := r.owners.Get(owner)
	if !ok {
		inner = orderedmap.New[models.Actor, int]()
		r.owners.Set(owner, inner)
	}
	current, ok := inner.Get(partner)
	if !ok {
		r.pairs++
	}
	inner.Set(partner, current+n)
}

// Count returns the number of movies shared by a and b, in either order.
// Pairs that never co-starred return zero.
func (r *Relation) Count(a, b models.Actor) int {
	if models.ActorLess(b, a) {
		a, b = b, a
	}
	inner, ok := r.owners.Get(a)
	if !ok {
		return 0
	}
	n, _ := inner.Get(b)
	return n
}

// Has reports whether an entry is stored for the pair, in either order.
func (r *Relation) Has(a, b models.Actor) bool {
	return r.Count(a, b) > 0
}

// Len returns the number of stored pairs.
func (r *Relation) Len() int {
	return r.pairs
}

// Owners returns the number of actors that own at least one pair.
func (r *Relation) Owners() int {
	return r.owners.Len()
}

// All iterates every stored pair in construction order.
func (r *Relation) All() iter.Seq[PairResult] {
	return func(yield func(PairResult) bool) {
		for o := r.owners.Oldest(); o != nil; o = o.Next() {
			for p := o.Value.Oldest(); p != nil; p = p.Next() {
				if !yield(PairResult{A: o.Key, B: p.Key, Count: p.Value}) {
					return
				}
			}
		}
	}
}

// Pairs returns every stored pair in construction order.
func (r *Relation) Pairs() []PairResult {
	out := make([]PairResult, 0, r.pairs)
	for p := range r.All() {
		out = append(out, p)
	}
	return out
}

// Merge adds every count of src into dst and returns dst. Owners and partners
// new to dst are appended in src's order. Merge is associative and
// commutative on counts; src must not be used afterwards.
func Merge(dst, src *Relation) *Relation {
	for o := src.owners.Oldest(); o != nil; o = o.Next() {
		for p := o.Value.Oldest(); p != nil; p = p.Next() {
			dst.add(o.Key, p.Key, p.Value)
		}
	}
	return dst
}
