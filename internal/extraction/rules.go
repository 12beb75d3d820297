package extraction

import (
	"regexp"
	"strconv"
)

// rule is one pattern in a per-field fallback chain. accept receives the
// submatches of a single occurrence; it validates them, fills the result
// and reports whether the occurrence was taken.
type rule struct {
	name   string
	re     *regexp.Regexp
	accept func(groups []string, r *Result) bool
}

// chain is an ordered list of rules. Rules are tried in order and every
// occurrence of a rule is offered to accept before moving to the next rule.
type chain []rule

// apply runs the chain over text and returns the name of the rule that
// filled r, or "" when none did.
func (c chain) apply(text string, r *Result) string {
	for _, rl := range c {
		for _, m := range rl.re.FindAllStringSubmatch(text, -1) {
			if rl.accept(m, r) {
				return rl.name
			}
		}
	}
	return ""
}

// applyFirst is apply for chains where only the first rule that matches
// anywhere in text is consulted. If every occurrence of that rule is
// rejected, later rules are not tried and "" is returned.
func (c chain) applyFirst(text string, r *Result) string {
	for _, rl := range c {
		matches := rl.re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		for _, m := range matches {
			if rl.accept(m, r) {
				return rl.name
			}
		}
		return ""
	}
	return ""
}

// positive parses s as a strictly positive decimal.
func positive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// inRange parses s and checks it against the closed interval [lo, hi].
func inRange(s string, lo, hi float64) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < lo || v > hi {
		return 0, false
	}
	return v, true
}

// setFloat returns an accept func that stores the first submatch in the
// field chosen by pick.
func setFloat(pick func(r *Result) **float64) func([]string, *Result) bool {
	return func(m []string, r *Result) bool {
		v, ok := positive(m[1])
		if !ok {
			return false
		}
		*pick(r) = floatPtr(v)
		return true
	}
}
