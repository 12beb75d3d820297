package extraction

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/guttosm/tradelens/internal/domain/models"
)

const mt5Fixture = "GBPUSD SELL 1.1\n1.35119 → 1.35131\nS/L: 1.35346\nT/P: 1.34535\n2025.12.24 09:33:32"

func assertResult(t *testing.T, got, want Result) {
	t.Helper()
	if got.Symbol != want.Symbol {
		t.Fatalf("symbol=%q, want %q", got.Symbol, want.Symbol)
	}
	if got.Direction != want.Direction {
		t.Fatalf("direction=%q, want %q", got.Direction, want.Direction)
	}
	assertFloat(t, "lot_size", got.LotSize, want.LotSize)
	assertFloat(t, "entry_price", got.EntryPrice, want.EntryPrice)
	assertFloat(t, "stop_loss", got.StopLoss, want.StopLoss)
	assertFloat(t, "take_profit", got.TakeProfit, want.TakeProfit)
	if got.EntryTimestamp != want.EntryTimestamp {
		t.Fatalf("entry_timestamp=%q, want %q", got.EntryTimestamp, want.EntryTimestamp)
	}
}

func TestExtract_TableDriven(t *testing.T) {
	x := New()
	cases := []struct {
		name string
		text string
		want Result
	}{
		{
			name: "full mt5 position",
			text: mt5Fixture,
			want: Result{
				Symbol:         "GBPUSD",
				Direction:      models.DirectionShort,
				LotSize:        floatPtr(1.1),
				EntryPrice:     floatPtr(1.35119),
				StopLoss:       floatPtr(1.35346),
				TakeProfit:     floatPtr(1.34535),
				EntryTimestamp: "2025-12-24T09:33",
			},
		},
		{
			name: "joint line only",
			text: "EURUSD BUY 0.5",
			want: Result{Symbol: "EURUSD", Direction: models.DirectionLong, LotSize: floatPtr(0.5)},
		},
		{
			name: "lowercase l inside price",
			text: "1.35l19",
			want: Result{EntryPrice: floatPtr(1.35119)},
		},
		{
			name: "out of range lot without direction",
			text: "350",
			want: Result{},
		},
		{
			name: "empty",
			text: "",
			want: Result{},
		},
		{
			name: "comma decimals",
			text: "XAUUSD BUY 0,10\n2650,125 → 2655,410",
			want: Result{Symbol: "XAUUSD", Direction: models.DirectionLong, LotSize: floatPtr(0.1), EntryPrice: floatPtr(2650.125)},
		},
		{
			name: "short S token",
			text: "USDJPY S 2",
			want: Result{Symbol: "USDJPY", Direction: models.DirectionShort, LotSize: floatPtr(2)},
		},
		{
			name: "symbol without joint then standalone direction and lot",
			text: "US30 H1\nBUY\n0.50 LOTS",
			want: Result{Symbol: "US30", Direction: models.DirectionLong, LotSize: floatPtr(0.5)},
		},
		{
			name: "joint with zero lot falls back to scan",
			text: "EURUSD BUY 0 VOLUME 0.20",
			want: Result{Symbol: "EURUSD", Direction: models.DirectionLong, LotSize: floatPtr(0.2)},
		},
		{
			name: "labels only",
			text: "SL 1.2000 TP 1.3000",
			want: Result{StopLoss: floatPtr(1.2), TakeProfit: floatPtr(1.3)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertResult(t, x.Extract(tc.text), tc.want)
		})
	}
}

func TestExtract_SymbolPriority(t *testing.T) {
	x := New()
	cases := []struct {
		name string
		text string
		want string
	}{
		// joint match is searched per symbol in set order, not text order
		{name: "joint for later set member only", text: "EURUSD BUY 0.5 GBPUSD", want: "EURUSD"},
		{name: "both joint, set order wins", text: "EURUSD SELL 1 GBPUSD BUY 2", want: "GBPUSD"},
		{name: "no joint, substring in set order", text: "EURUSD ... GBPUSD", want: "GBPUSD"},
		{name: "no joint, single symbol", text: "CHART XAGUSD H1", want: "XAGUSD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := x.Extract(tc.text).Symbol; got != tc.want {
				t.Fatalf("symbol=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtract_CustomSymbols(t *testing.T) {
	set, err := NewSymbolSet("NAS100", "EURUSD")
	if err != nil {
		t.Fatalf("NewSymbolSet: %v", err)
	}
	x := New(WithSymbols(set))
	r := x.Extract("nas100 buy 0.3")
	if r.Symbol != "NAS100" || r.Direction != models.DirectionLong || r.LotSize == nil || *r.LotSize != 0.3 {
		t.Fatalf("unexpected result: %+v", r)
	}
	if got := x.Extract("GBPUSD SELL 1").Symbol; got != "" {
		t.Fatalf("symbol outside the set recovered: %q", got)
	}
}

func TestExtract_LotRangeOption(t *testing.T) {
	x := New(WithLotRange(1, 500))
	r := x.Extract("SELL 350")
	if r.LotSize == nil || *r.LotSize != 350 {
		t.Fatalf("lot=%v, want 350", deref(r.LotSize))
	}
	// invalid range is ignored
	x = New(WithLotRange(10, 1))
	if r := x.Extract("SELL 350"); r.LotSize != nil {
		t.Fatalf("lot=%v, want absent", *r.LotSize)
	}
}

func TestExtract_EmptyResultJSON(t *testing.T) {
	b, err := json.Marshal(New().Extract(""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{}" {
		t.Fatalf("json=%s, want {}", b)
	}
}

func TestResult_Fields(t *testing.T) {
	r := New().Extract(mt5Fixture)
	if got := len(r.Fields()); got != 7 {
		t.Fatalf("fields=%v", r.Fields())
	}
	if r.IsEmpty() {
		t.Fatalf("full result reported empty")
	}
	if !(Result{}).IsEmpty() {
		t.Fatalf("zero result not empty")
	}
}

func TestExtract_ConcurrentUse(t *testing.T) {
	x := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := x.Extract(mt5Fixture)
			if r.Symbol != "GBPUSD" || r.EntryPrice == nil || *r.EntryPrice != 1.35119 {
				t.Errorf("unexpected result: %+v", r)
			}
		}()
	}
	wg.Wait()
}

func TestExtract_EntryChainStopsAtFirstMatchingRule(t *testing.T) {
	got := New().Extract("0.000 → 0.000\n1.35119")
	if got.EntryPrice != nil {
		t.Fatalf("entry=%v, want absent", *got.EntryPrice)
	}

	got = New().Extract("2025.02.31 10:00")
	if got.EntryTimestamp != "" {
		t.Fatalf("timestamp=%q, want absent", got.EntryTimestamp)
	}
}
