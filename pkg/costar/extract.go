package costar

import (
	"cmp"
	"slices"

	"github.com/dtnitsch/movie-costar/models"
)

// MaxPair returns the pair with the greatest count. On equal counts the pair
// met first in construction order wins.
func MaxPair(r *Relation) (PairResult, error) {
	var best PairResult
	found := false
	for p := range r.All() {
		if !found || p.Count > best.Count {
			best = p
			found = true
		}
	}
	if !found {
		return PairResult{}, ErrEmptyCorpus
	}
	return best, nil
}

func bestPartner(owner models.Actor, inner *partners) PairResult {
	best := PairResult{A: owner}
	for p := inner.Oldest(); p != nil; p = p.Next() {
		if p.Value > best.Count {
			best.B = p.Key
			best.Count = p.Value
		}
	}
	return best
}

// BestPartners maps every actor owning at least one pair to its partner with
// the greatest count, first in construction order on ties. Partners are
// looked up on the owner side only, as pairs are stored once.
func BestPartners(r *Relation) map[models.Actor]PairResult {
	out := make(map[models.Actor]PairResult, r.Owners())
	for o := r.owners.Oldest(); o != nil; o = o.Next() {
		if o.Value.Len() == 0 {
			continue
		}
		out[o.Key] = bestPartner(o.Key, o.Value)
	}
	return out
}

// MaxPartner reduces the best partners of all owners to the one with the
// greatest count, walking owners in construction order.
func MaxPartner(r *Relation) (PairResult, error) {
	var best PairResult
	found := false
	for o := r.owners.Oldest(); o != nil; o = o.Next() {
		if o.Value.Len() == 0 {
			continue
		}
		candidate := bestPartner(o.Key, o.Value)
		if !found || candidate.Count > best.Count {
			best = candidate
			found = true
		}
	}
	if !found {
		return PairResult{}, ErrEmptyCorpus
	}
	return best, nil
}

// TopPairs returns the n pairs with the greatest counts, highest first.
// Equal counts keep construction order. n <= 0 returns nil.
func TopPairs(r *Relation, n int) []PairResult {
	if n <= 0 {
		return nil
	}
	pairs := r.Pairs()
	slices.SortStableFunc(pairs, func(a, b PairResult) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
