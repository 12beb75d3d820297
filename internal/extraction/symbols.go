package extraction

import (
	"errors"
	"fmt"
	"strings"
)

var defaultSymbols = []string{
	"GBPUSD", "EURUSD", "USDCAD", "USDJPY", "AUDUSD", "NZDUSD", "USDCHF",
	"EURGBP", "EURJPY", "GBPJPY", "AUDJPY", "CADJPY", "CHFJPY",
	"XAUUSD", "XAGUSD", "BTCUSD", "ETHUSD", "US30", "US500", "USTEC",
	"GER40", "UK100", "FRA40", "JPN225",
}

// ErrInvalidSymbol is returned when a symbol set would break its invariants.
var ErrInvalidSymbol = errors.New("invalid symbol")

// SymbolSet is an immutable, ordered list of canonical instrument codes.
//
// Order is matching priority: when several codes could match the same text,
// the earlier one wins. No code in a set is a substring of another.
type SymbolSet struct {
	codes []string
}

// DefaultSymbols returns the built-in set of majors, crosses, metals,
// crypto and indices.
func DefaultSymbols() SymbolSet {
	s, err := NewSymbolSet(defaultSymbols...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSymbolSet builds a set from codes, in the given order. Codes are
// trimmed and uppercased. It fails on empty or non-alphanumeric codes,
// duplicates, and codes contained in one another.
func NewSymbolSet(codes ...string) (SymbolSet, error) {
	out := make([]string, 0, len(codes))
	for _, raw := range codes {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if err := validateCode(code); err != nil {
			return SymbolSet{}, err
		}
		for _, prev := range out {
			if prev == code {
				return SymbolSet{}, fmt.Errorf("%w: duplicate %q", ErrInvalidSymbol, code)
			}
			if strings.Contains(prev, code) || strings.Contains(code, prev) {
				return SymbolSet{}, fmt.Errorf("%w: %q overlaps %q", ErrInvalidSymbol, code, prev)
			}
		}
		out = append(out, code)
	}
	if len(out) == 0 {
		return SymbolSet{}, fmt.Errorf("%w: empty set", ErrInvalidSymbol)
	}
	return SymbolSet{codes: out}, nil
}

// With returns a new set with codes appended after the existing ones.
// The receiver is left unchanged.
func (s SymbolSet) With(codes ...string) (SymbolSet, error) {
	all := make([]string, 0, len(s.codes)+len(codes))
	all = append(all, s.codes...)
	all = append(all, codes...)
	return NewSymbolSet(all...)
}

// Codes returns a copy of the codes in priority order.
func (s SymbolSet) Codes() []string {
	return append([]string(nil), s.codes...)
}

// Len returns the number of codes.
func (s SymbolSet) Len() int { return len(s.codes) }

func validateCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidSymbol)
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("%w: %q must be alphanumeric", ErrInvalidSymbol, code)
		}
	}
	return nil
}
