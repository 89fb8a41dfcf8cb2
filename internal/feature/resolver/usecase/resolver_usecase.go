package usecase

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"

	"finos_backend/internal/feature/resolver/domain/entity"
)

// NSESuffix is the exchange suffix appended when an unmatched query is
// guessed to be an Indian listing.
const NSESuffix = ".NS"

// marketMarkers are the substrings that mark a symbol as already
// exchange-qualified: NSE/BSE suffixes, the caret prefix of indices, the
// hyphen of crypto pairs and the equals sign of FX pairs.
var marketMarkers = []string{".NS", ".BO", "^", "-", "="}

// DirectoryProvider supplies the current reference directory snapshot.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (the snapshot store or adapters).
type DirectoryProvider interface {
	// Snapshot returns the current directory, lazily (re)building it when
	// empty or stale. It never returns nil.
	Snapshot(ctx context.Context) *entity.Directory
}

// PriceProber answers whether a bare symbol has a current last-traded price
// at the quote provider. A probe error is treated by the resolver as "no
// price", never surfaced.
type PriceProber interface {
	HasPrice(ctx context.Context, symbol string) (bool, error)
}

// ResolverUsecase maps a free-form instrument query to the most plausible
// exchange-qualified trading symbol. It never fails: when every matching
// stage comes up empty it falls back to suffix heuristics, and the
// downstream quote provider is the one to report an unknown instrument.
type ResolverUsecase struct {
	dir    DirectoryProvider
	prober PriceProber
	cfg    Config
}

// NewResolverUsecase creates a ResolverUsecase with the given directory
// provider, price prober and tuning parameters.
func NewResolverUsecase(dir DirectoryProvider, prober PriceProber, cfg Config) *ResolverUsecase {
	if cfg.FuzzyCutoff <= 0 || cfg.FuzzyCutoff > 1 {
		cfg.FuzzyCutoff = DefaultFuzzyCutoff
	}
	if cfg.FuzzyMinQueryLen <= 0 {
		cfg.FuzzyMinQueryLen = DefaultFuzzyMinQueryLen
	}
	if cfg.BareTickerMaxLen <= 0 {
		cfg.BareTickerMaxLen = DefaultBareTickerMaxLen
	}
	return &ResolverUsecase{dir: dir, prober: prober, cfg: cfg}
}

// Resolve runs the resolution stages in order and returns a non-empty
// trading symbol. Earlier, deterministic stages win over later ones:
//
//  1. exact alias match (authoritative, includes the seeded shorthand)
//  2. prefix scan, shortest alias wins, first-seen on a length tie
//  3. fuzzy scan for queries longer than FuzzyMinQueryLen, highest
//     similarity at or above FuzzyCutoff wins, first-seen on a score tie
//  4. suffix inference on the query itself, with a single live probe for
//     short alphabetic queries ambiguous between US and NSE listings
func (u *ResolverUsecase) Resolve(ctx context.Context, query string) string {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return q
	}

	dir := u.dir.Snapshot(ctx)

	if sym, ok := dir.Lookup(q); ok {
		return sym
	}

	if sym, ok := u.prefixMatch(dir, q); ok {
		return sym
	}

	if len(q) > u.cfg.FuzzyMinQueryLen {
		if sym, ok := u.fuzzyMatch(dir, q); ok {
			return sym
		}
	}

	return u.inferSuffix(ctx, q)
}

// prefixMatch returns the symbol of the shortest alias starting with q.
// The scan keeps the first alias seen at the minimum length, so results
// are stable across calls against the same snapshot.
func (u *ResolverUsecase) prefixMatch(dir *entity.Directory, q string) (string, bool) {
	best := ""
	for _, alias := range dir.Aliases() {
		if !strings.HasPrefix(alias, q) {
			continue
		}
		if best == "" || len(alias) < len(best) {
			best = alias
		}
	}
	if best == "" {
		return "", false
	}
	sym, ok := dir.Lookup(best)
	return sym, ok
}

// fuzzyMatch returns the symbol of the alias most similar to q, if its
// score reaches the configured cutoff. Ties keep the first alias found.
func (u *ResolverUsecase) fuzzyMatch(dir *entity.Directory, q string) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, alias := range dir.Aliases() {
		score := similarity(q, alias)
		if score >= u.cfg.FuzzyCutoff && score > bestScore {
			best = alias
			bestScore = score
		}
	}
	if best == "" {
		return "", false
	}
	sym, ok := dir.Lookup(best)
	return sym, ok
}

// inferSuffix is the terminal fallback: the query itself, exchange-suffixed
// by heuristic. Strings already carrying a market marker pass through
// unchanged. Short alphabetic strings are ambiguous between a US ticker and
// an unsuffixed NSE one; a single probe against the quote provider decides,
// and probe failure counts as "not a US ticker".
func (u *ResolverUsecase) inferSuffix(ctx context.Context, q string) string {
	for _, marker := range marketMarkers {
		if strings.Contains(q, marker) {
			return q
		}
	}

	if len(q) <= u.cfg.BareTickerMaxLen && isAlpha(q) {
		if ok, err := u.prober.HasPrice(ctx, q); err == nil && ok {
			return q
		}
		return q + NSESuffix
	}

	return q + NSESuffix
}

// similarity scores two strings in [0,1] as a normalized Levenshtein
// ratio. The exact metric is not load-bearing; only the cutoff contract
// (score above cutoff, highest wins, first-seen ties) matters.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// isAlpha reports whether s consists solely of ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return s != ""
}
