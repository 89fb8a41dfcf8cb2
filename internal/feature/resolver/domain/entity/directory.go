// Package entity defines the domain models for the resolver feature.
package entity

import "strings"

// Entry is a single alias-to-symbol mapping fed into a Directory build.
type Entry struct {
	Alias  string // what a user might type (ticker, company name, shorthand)
	Symbol string // exchange-qualified trading symbol (e.g. "RELIANCE.NS", "BTC-USD")
}

// Directory is an immutable snapshot of the reference directory: an
// uppercased alias-to-symbol map plus the ordered list of aliases used by
// the prefix and fuzzy scan stages.
//
// A Directory is never mutated after construction. Concurrent readers need
// no synchronization; rebuilds construct a fresh Directory and publish it
// atomically (see usecase.Store).
type Directory struct {
	byAlias map[string]string
	aliases []string
}

// NewDirectory builds a Directory from entries in order.
//
// Aliases are uppercased and trimmed. On a duplicate alias the last value
// wins, but the alias keeps its first position in the index, so scan order
// is stable regardless of how often a key is re-seeded.
func NewDirectory(entries []Entry) *Directory {
	d := &Directory{
		byAlias: make(map[string]string, len(entries)),
		aliases: make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		alias := strings.ToUpper(strings.TrimSpace(e.Alias))
		if alias == "" || e.Symbol == "" {
			continue
		}
		if _, ok := d.byAlias[alias]; !ok {
			d.aliases = append(d.aliases, alias)
		}
		d.byAlias[alias] = e.Symbol
	}
	return d
}

// Lookup returns the symbol mapped to an already-normalized alias.
func (d *Directory) Lookup(alias string) (string, bool) {
	s, ok := d.byAlias[alias]
	return s, ok
}

// Aliases returns every alias in first-insertion order. Callers must not
// mutate the returned slice.
func (d *Directory) Aliases() []string {
	return d.aliases
}

// Len returns the number of distinct aliases in the directory.
func (d *Directory) Len() int {
	return len(d.byAlias)
}
