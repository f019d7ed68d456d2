package search

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ranker orders a combined result list (system + custom foods scored
// independently) by display name: exact full-string equality first,
// then prefix matches, then Vietnamese-collation alphabetical order.
type Ranker struct {
	query    string
	collator *collate.Collator
}

func NewRanker(query string) *Ranker {
	return &Ranker{
		query:    strings.ToLower(strings.TrimSpace(query)),
		collator: collate.New(language.Vietnamese),
	}
}

// Less reports whether name a should sort before name b.
func (r *Ranker) Less(a, b string) bool {
	aLower := strings.ToLower(a)
	bLower := strings.ToLower(b)

	aExact := aLower == r.query
	bExact := bLower == r.query
	if aExact != bExact {
		return aExact
	}

	aPrefix := strings.HasPrefix(aLower, r.query)
	bPrefix := strings.HasPrefix(bLower, r.query)
	if aPrefix != bPrefix {
		return aPrefix
	}

	return r.collator.CompareString(aLower, bLower) < 0
}
