package models

import (
	"slices"
	"strings"
)

// Actor identifies a cast member. Two actors are the same actor when both
// name parts match exactly.
type Actor struct {
	LastName  string `json:"last_name" yaml:"last_name"`
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
}

// NewActor returns the actor with the given names.
func NewActor(lastName, firstName string) Actor {
	return Actor{LastName: lastName, FirstName: firstName}
}

func (a Actor) String() string {
	if a.FirstName == "" {
		return a.LastName
	}
	return a.LastName + " " + a.FirstName
}

// CompareActors orders actors by last name, then first name. The comparison
// is case-sensitive and byte-lexical.
func CompareActors(a, b Actor) int {
	if c := strings.Compare(a.LastName, b.LastName); c != 0 {
		return c
	}
	return strings.Compare(a.FirstName, b.FirstName)
}

// ActorLess reports whether a sorts strictly before b.
func ActorLess(a, b Actor) bool {
	return CompareActors(a, b) < 0
}

// SortActors sorts actors in place by CompareActors.
func SortActors(actors []Actor) {
	slices.SortFunc(actors, CompareActors)
}
