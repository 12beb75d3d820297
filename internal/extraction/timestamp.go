package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// timestampRules match "2025.12.24 09:33:32" and its / and - variants.
// Seconds are optional and never part of the output. The date must exist
// in the calendar: 2025.02.31 is rejected.
var timestampRules = chain{{
	name: "timestamp",
	re:   regexp.MustCompile(`(\d{4})[./-](\d{1,2})[./-](\d{1,2})\s+(\d{1,2}):(\d{2}):?(\d{2})?`),
	accept: func(m []string, r *Result) bool {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
			return false
		}
		if d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC); d.Day() != day {
			return false
		}
		r.EntryTimestamp = fmt.Sprintf("%s-%02d-%02dT%02d:%02d", m[1], month, day, hour, minute)
		return true
	},
}}
