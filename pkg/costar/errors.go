package costar

import "errors"

var (
	// ErrEmptyCorpus is returned by the extractors when the relation holds no
	// pair to pick from.
	ErrEmptyCorpus = errors.New("empty corpus: no co-occurring actor pairs")

	// ErrPrecondition marks a malformed corpus handed to the reducer.
	ErrPrecondition = errors.New("corpus precondition violated")
)
