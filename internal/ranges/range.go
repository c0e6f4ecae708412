// Package ranges classifies two-card starting hands against an opening range.
package ranges

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lox/leanbot/internal/deck"
)

// ErrInvalidKey is returned for a range entry that is not a shorthand key.
var ErrInvalidKey = errors.New("invalid range key")

// TopTwentyPercent is the default opening range: roughly the best fifth of the
// 169 distinct starting hands, written as shorthand keys. Pairs carry the "o"
// suffix because that is how a pair renders.
var TopTwentyPercent = []string{
	// pairs
	"AAo", "KKo", "QQo", "JJo", "TTo", "99o", "88o", "77o", "66o", "55o", "44o",
	// suited aces
	"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
	// suited broadways
	"KQs", "KJs", "KTs", "QJs", "QTs", "JTs",
	// offsuit broadways
	"AKo", "AQo", "AJo", "ATo", "KQo", "KJo", "QJo",
	// suited connectors and one-gappers
	"K9s", "Q9s", "J9s", "T9s", "98s", "87s", "76s", "65s",
}

// Range is a fixed set of starting-hand shorthand keys.
type Range struct {
	keys map[string]struct{}
}

var defaultRange = MustNew(TopTwentyPercent...)

// Default returns the TopTwentyPercent range.
func Default() *Range {
	return defaultRange
}

// New builds a range from shorthand keys such as "AKs" or "44o".
func New(keys ...string) (*Range, error) {
	r := &Range{keys: make(map[string]struct{}, len(keys))}
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if err := validateKey(key); err != nil {
			return nil, err
		}
		r.keys[key] = struct{}{}
	}
	return r, nil
}

// MustNew is New for static tables; it panics on an invalid key.
func MustNew(keys ...string) *Range {
	r, err := New(keys...)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains reports whether the starting hand made of a and b is in the range.
// a and b must be two different cards.
func (r *Range) Contains(a, b deck.Card) bool {
	_, ok := r.keys[Key(a, b)]
	return ok
}

// ContainsKey reports whether a shorthand key is in the range.
func (r *Range) ContainsKey(key string) bool {
	_, ok := r.keys[key]
	return ok
}

// Len returns the number of keys in the range.
func (r *Range) Len() int {
	return len(r.keys)
}

// Keys returns the range's keys, strongest rank first.
func (r *Range) Keys() []string {
	keys := make([]string, 0, len(r.keys))
	for k := range r.keys {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		for i := range 2 {
			if d := rankIndex(b[i]) - rankIndex(a[i]); d != 0 {
				return d
			}
		}
		return strings.Compare(b[2:], a[2:])
	})
	return keys
}

// IsInOpeningRange reports whether a and b form a hand in the default range.
func IsInOpeningRange(a, b deck.Card) bool {
	return defaultRange.Contains(a, b)
}

// Key returns the shorthand key for a two-card starting hand.
func Key(a, b deck.Card) string {
	h, _ := deck.NewHand(a, b)
	return h.Shorthand()
}

func validateKey(key string) error {
	if len(key) != 3 {
		return fmt.Errorf("%w: %q must be two ranks and s or o", ErrInvalidKey, key)
	}
	hi, lo := rankIndex(key[0]), rankIndex(key[1])
	if hi < 0 || lo < 0 {
		return fmt.Errorf("%w: %q has an unknown rank", ErrInvalidKey, key)
	}
	if hi < lo {
		return fmt.Errorf("%w: %q must list the higher rank first", ErrInvalidKey, key)
	}
	switch key[2] {
	case 'o':
	case 's':
		if hi == lo {
			return fmt.Errorf("%w: pair %q cannot be suited", ErrInvalidKey, key)
		}
	default:
		return fmt.Errorf("%w: %q must end in s or o", ErrInvalidKey, key)
	}
	return nil
}

func rankIndex(c byte) int {
	return strings.IndexByte("23456789TJQKA", c)
}
