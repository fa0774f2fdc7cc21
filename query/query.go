// Package query keeps a local popularity history of what was searched for,
// feeding prompt suggestions without any remote calls.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// record is one remembered search with its accumulated weight. A search that
// ended in a download weighs more than one that was only browsed.
type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var history = gache.New[map[string]*record](&gache.Options{
	Path:       where.Queries(),
	FileSystem: &filesystem.GacheFs{},
})

// memo keeps per-input suggestion lists for the lifetime of the process.
var memo = make(map[string][]*record)

// Remember adds weight to a search query, creating it on first sight.
func Remember(q string, weight int) error {
	q = normalize(q)

	known, expired, err := history.Get()
	if expired || err != nil || known == nil {
		known = make(map[string]*record)
	}

	if rec, ok := known[q]; ok {
		rec.Rank += weight
	} else {
		known[q] = &record{Rank: weight, Query: q}
	}

	return history.Set(known)
}

// Suggest returns the best historical completion for a partial input.
func Suggest(q string) mo.Option[string] {
	if all := SuggestMany(q); len(all) > 0 {
		return mo.Some(all[0])
	}
	return mo.None[string]()
}

// SuggestMany returns historical completions for a partial input, heaviest
// first. Disabled through configuration it returns nothing.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	q = normalize(q)

	records, ok := memo[q]
	if !ok {
		known, expired, err := history.Get()
		if err != nil || expired || known == nil {
			return nil
		}

		records = lo.Filter(lo.Values(known), func(rec *record, _ int) bool {
			return fuzzy.Match(q, rec.Query)
		})
		slices.SortFunc(records, func(a, b *record) int {
			return b.Rank - a.Rank
		})

		memo[q] = records
	}

	return lo.Map(records, func(rec *record, _ int) string {
		return rec.Query
	})
}

// normalize folds a query so "Never Gonna" and "never gonna " collect into
// one record.
func normalize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
