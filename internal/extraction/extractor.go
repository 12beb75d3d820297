// Package extraction turns noisy OCR text from a trading-platform
// screenshot into a partial, typed trade record.
//
// Every extractor is a pure function over the same normalized text, so an
// Extractor can be shared by any number of goroutines.
package extraction

// Extractor recovers trade attributes from recognized text.
type Extractor struct {
	symbols SymbolSet
	minLot  float64
	maxLot  float64
	joint   chain
	lot     chain
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSymbols replaces the known-symbol set.
func WithSymbols(s SymbolSet) Option {
	return func(e *Extractor) {
		if s.Len() > 0 {
			e.symbols = s
		}
	}
}

// WithLotRange overrides the plausible lot-size interval used by the
// fallback lot scan. Invalid ranges are ignored.
func WithLotRange(lo, hi float64) Option {
	return func(e *Extractor) {
		if lo > 0 && hi >= lo {
			e.minLot, e.maxLot = lo, hi
		}
	}
}

// New builds an Extractor. Without options it uses DefaultSymbols and a
// lot range of [0.01, 100].
func New(opts ...Option) *Extractor {
	e := &Extractor{
		symbols: DefaultSymbols(),
		minLot:  defaultMinLot,
		maxLot:  defaultMaxLot,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.joint = jointRules(e.symbols)
	e.lot = lotRules(e.minLot, e.maxLot)
	return e
}

// Symbols returns the set the extractor matches against.
func (e *Extractor) Symbols() SymbolSet { return e.symbols }

// Extract normalizes raw once and runs every field extractor over the
// result. It never fails: fields with no supporting text stay absent.
func (e *Extractor) Extract(raw string) Result {
	return e.ExtractNormalized(Normalize(raw))
}

// ExtractNormalized is Extract for text that already went through
// Normalize. It must not be given raw OCR output.
func (e *Extractor) ExtractNormalized(text string) Result {
	var r Result
	e.extractInstrument(text, &r)
	entryRules.applyFirst(text, &r)
	stopLossRules.apply(text, &r)
	takeProfitRules.apply(text, &r)
	timestampRules.apply(text, &r)
	return r
}
