package extraction

import (
	"regexp"
	"strings"

	"github.com/guttosm/tradelens/internal/domain/models"
)

const (
	defaultMinLot = 0.01
	defaultMaxLot = 100.0
)

// jointRules builds one rule per symbol, in set order, matching
// "<SYMBOL> <SELL|BUY|S> <lot>" as a single occurrence.
func jointRules(symbols SymbolSet) chain {
	out := make(chain, 0, symbols.Len())
	for _, code := range symbols.codes {
		out = append(out, rule{
			name: "joint:" + code,
			re:   regexp.MustCompile(`(?i)(` + regexp.QuoteMeta(code) + `)\s*(SELL|BUY|S)\s*([0-9]+\.?[0-9]*)`),
			accept: func(m []string, r *Result) bool {
				r.Symbol = strings.ToUpper(m[1])
				r.Direction = directionOf(m[2])
				// a zero lot is not a lot; leave it to the fallback scan
				if v, ok := positive(m[3]); ok {
					r.LotSize = floatPtr(v)
				}
				return true
			},
		})
	}
	return out
}

func directionOf(token string) models.Direction {
	switch strings.ToUpper(token) {
	case "BUY", "B":
		return models.DirectionLong
	default:
		return models.DirectionShort
	}
}

// firstSymbol returns the first code of the set contained in text.
func firstSymbol(symbols SymbolSet, text string) string {
	for _, code := range symbols.codes {
		if strings.Contains(text, code) {
			return code
		}
	}
	return ""
}

var directionRules = chain{
	{
		name: "direction:sell",
		re:   regexp.MustCompile(`(?i)\bSELL\b`),
		accept: func(_ []string, r *Result) bool {
			r.Direction = models.DirectionShort
			return true
		},
	},
	{
		name: "direction:buy",
		re:   regexp.MustCompile(`(?i)\bBUY\b`),
		accept: func(_ []string, r *Result) bool {
			r.Direction = models.DirectionLong
			return true
		},
	},
}

// lotRules scans for a plausible lot size: next to a direction keyword
// first, then any short decimal. Candidates outside [lo, hi] are skipped.
func lotRules(lo, hi float64) chain {
	accept := func(m []string, r *Result) bool {
		v, ok := inRange(m[1], lo, hi)
		if !ok {
			return false
		}
		r.LotSize = floatPtr(v)
		return true
	}
	return chain{
		{
			name:   "lot:after-direction",
			re:     regexp.MustCompile(`(?i)\b(?:SELL|BUY)\s+([0-9]+(?:\.[0-9]+)?)\b`),
			accept: accept,
		},
		{
			name:   "lot:before-direction",
			re:     regexp.MustCompile(`(?i)\b([0-9]+\.[0-9]+)\s*(?:SELL|BUY)\b`),
			accept: accept,
		},
		{
			name:   "lot:bare-decimal",
			re:     regexp.MustCompile(`(?i)\b([0-9]+\.[0-9]{1,2})\s*(?:LOTS?)?\b`),
			accept: accept,
		},
	}
}

// extractInstrument fills symbol, direction and lot size.
func (e *Extractor) extractInstrument(text string, r *Result) {
	if e.joint.apply(text, r) == "" {
		r.Symbol = firstSymbol(e.symbols, text)
	}
	if r.Direction == "" {
		directionRules.apply(text, r)
	}
	if r.LotSize == nil {
		e.lot.apply(text, r)
	}
}
