package extraction

import "regexp"

// entryRules recover the entry price from an "entry → current" quote.
// OCR renders the arrow as →, ->, >, ~ or », sometimes repeated.
var entryRules = chain{
	{
		name:   "entry:arrow-pair",
		re:     regexp.MustCompile(`([0-9]+\.[0-9]{3,5})\s*[→>~»-]+\s*[0-9]+\.[0-9]{3,5}`),
		accept: setFloat(func(r *Result) **float64 { return &r.EntryPrice }),
	},
	{
		name:   "entry:spaced-pair",
		re:     regexp.MustCompile(`([0-9]+\.[0-9]{3,5})\s+[0-9]+\.[0-9]{3,5}`),
		accept: setFloat(func(r *Result) **float64 { return &r.EntryPrice }),
	},
	{
		name:   "entry:five-digit",
		re:     regexp.MustCompile(`\b([0-9]+\.[0-9]{5})\b`),
		accept: setFloat(func(r *Result) **float64 { return &r.EntryPrice }),
	},
}

// stopLossRules and takeProfitRules match the labeled S/L and T/P values.
var (
	stopLossRules = chain{{
		name:   "stop-loss",
		re:     regexp.MustCompile(`S/?L[:\s]+([0-9]+\.[0-9]{3,5})`),
		accept: setFloat(func(r *Result) **float64 { return &r.StopLoss }),
	}}
	takeProfitRules = chain{{
		name:   "take-profit",
		re:     regexp.MustCompile(`T/?P[:\s]+([0-9]+\.[0-9]{3,5})`),
		accept: setFloat(func(r *Result) **float64 { return &r.TakeProfit }),
	}}
)
