package extraction

import (
	"testing"

	"github.com/guttosm/tradelens/internal/domain/models"
)

func TestEntryRules(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		wantRule string
		want     float64
	}{
		{name: "unicode arrow", text: "1.35119 → 1.35131", wantRule: "entry:arrow-pair", want: 1.35119},
		{name: "ascii arrow", text: "1.35119 -> 1.35131", wantRule: "entry:arrow-pair", want: 1.35119},
		{name: "tilde", text: "1.2345~1.2350", wantRule: "entry:arrow-pair", want: 1.2345},
		{name: "guillemet run", text: "150.123 »» 151.000", wantRule: "entry:arrow-pair", want: 150.123},
		{name: "arrow beats earlier spaced pair", text: "1.10000 1.20000\n1.30000 → 1.40000", wantRule: "entry:arrow-pair", want: 1.3},
		{name: "spaced pair", text: "1.10000 1.20000", wantRule: "entry:spaced-pair", want: 1.1},
		{name: "five digit", text: "PRICE 1.23456", wantRule: "entry:five-digit", want: 1.23456},
		{name: "three digits alone", text: "PRICE 1.234"},
		{name: "six digits alone", text: "PRICE 1.234567"},
		{name: "nothing", text: "NO PRICES HERE"},
		{name: "rejected arrow pair stops the chain", text: "0.000 → 0.000\n1.35119"},
		{name: "later arrow occurrence", text: "0.000 → 0.000\n1.35119 → 1.35131", wantRule: "entry:arrow-pair", want: 1.35119},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Result
			got := entryRules.applyFirst(tc.text, &r)
			if got != tc.wantRule {
				t.Fatalf("rule=%q, want %q", got, tc.wantRule)
			}
			if tc.wantRule == "" {
				if r.EntryPrice != nil {
					t.Fatalf("entry price set to %v", *r.EntryPrice)
				}
				return
			}
			if r.EntryPrice == nil || *r.EntryPrice != tc.want {
				t.Fatalf("entry=%v, want %v", r.EntryPrice, tc.want)
			}
		})
	}
}

func TestStopLossTakeProfitRules(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		wantSL *float64
		wantTP *float64
	}{
		{name: "slashed labels", text: "S/L: 1.35346\nT/P: 1.34535", wantSL: floatPtr(1.35346), wantTP: floatPtr(1.34535)},
		{name: "bare labels", text: "SL 1.2345 TP 1.3456", wantSL: floatPtr(1.2345), wantTP: floatPtr(1.3456)},
		{name: "colon without space", text: "SL:2650.125", wantSL: floatPtr(2650.125)},
		{name: "too few digits", text: "S/L: 1.35 T/P: 1.3"},
		{name: "missing", text: "GBPUSD SELL 1.1"},
		{name: "first wins", text: "SL 1.111 SL 2.222", wantSL: floatPtr(1.111)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Result
			stopLossRules.apply(tc.text, &r)
			takeProfitRules.apply(tc.text, &r)
			assertFloat(t, "stop_loss", r.StopLoss, tc.wantSL)
			assertFloat(t, "take_profit", r.TakeProfit, tc.wantTP)
		})
	}
}

func TestTimestampRules(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "2025.12.24 09:33:32", want: "2025-12-24T09:33"},
		{text: "2025/1/5 9:05", want: "2025-01-05T09:05"},
		{text: "2025-03-07 23:59", want: "2025-03-07T23:59"},
		{text: "OPENED 2024.6.30   7:00:01 UTC", want: "2024-06-30T07:00"},
		{text: "2025.13.01 10:00", want: ""},
		{text: "2025.02.31 10:00", want: ""},
		{text: "2025.04.31 10:00", want: ""},
		{text: "2024.02.29 10:00", want: "2024-02-29T10:00"},
		{text: "2025.02.29 10:00", want: ""},
		{text: "2025.12.24", want: ""},
		{text: "09:33:32", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			var r Result
			timestampRules.apply(tc.text, &r)
			if r.EntryTimestamp != tc.want {
				t.Fatalf("timestamp=%q, want %q", r.EntryTimestamp, tc.want)
			}
		})
	}
}

func TestDirectionRules(t *testing.T) {
	cases := []struct {
		text string
		want models.Direction
	}{
		{text: "BUY LIMIT", want: models.DirectionLong},
		{text: "SELL STOP", want: models.DirectionShort},
		{text: "BUY THEN SELL", want: models.DirectionShort},
		{text: "BUYER SELLER", want: ""},
		{text: "", want: ""},
	}
	for _, tc := range cases {
		var r Result
		directionRules.apply(tc.text, &r)
		if r.Direction != tc.want {
			t.Fatalf("%q: direction=%q, want %q", tc.text, r.Direction, tc.want)
		}
	}
}

func TestLotRules(t *testing.T) {
	rules := lotRules(defaultMinLot, defaultMaxLot)
	cases := []struct {
		name     string
		text     string
		wantRule string
		want     *float64
	}{
		{name: "after keyword", text: "BUY 0.25", wantRule: "lot:after-direction", want: floatPtr(0.25)},
		{name: "after keyword integer", text: "SELL 2", wantRule: "lot:after-direction", want: floatPtr(2)},
		{name: "before keyword", text: "0.30 SELL", wantRule: "lot:before-direction", want: floatPtr(0.3)},
		{name: "bare with lots suffix", text: "VOLUME 2.5 LOTS", wantRule: "lot:bare-decimal", want: floatPtr(2.5)},
		{name: "out of range skipped", text: "150.5 AND 0.75", wantRule: "lot:bare-decimal", want: floatPtr(0.75)},
		{name: "keyword value out of range", text: "SELL 350"},
		{name: "integer without keyword", text: "350"},
		{name: "below minimum", text: "0.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Result
			if got := rules.apply(tc.text, &r); got != tc.wantRule {
				t.Fatalf("rule=%q, want %q", got, tc.wantRule)
			}
			assertFloat(t, "lot_size", r.LotSize, tc.want)
		})
	}
}

func assertFloat(t *testing.T, field string, got, want *float64) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Fatalf("%s: got %v, want %v", field, deref(got), deref(want))
	case *got != *want:
		t.Fatalf("%s: got %v, want %v", field, *got, *want)
	}
}

func deref(p *float64) any {
	if p == nil {
		return "<absent>"
	}
	return *p
}
