package extraction

import "github.com/guttosm/tradelens/internal/domain/models"

// TimestampLayout is the canonical entry timestamp format (datetime-local).
const TimestampLayout = "2006-01-02T15:04"

// Result holds whatever trade attributes were recovered from one screenshot.
//
// Every field is optional and set only when a pattern matched it: an empty
// string or a nil pointer means "not recovered", never a default.
type Result struct {
	Symbol         string           `json:"symbol,omitempty" example:"GBPUSD"`
	Direction      models.Direction `json:"direction,omitempty" example:"short"`
	LotSize        *float64         `json:"lot_size,omitempty" example:"1.1"`
	EntryPrice     *float64         `json:"entry_price,omitempty" example:"1.35119"`
	StopLoss       *float64         `json:"stop_loss,omitempty" example:"1.35346"`
	TakeProfit     *float64         `json:"take_profit,omitempty" example:"1.34535"`
	EntryTimestamp string           `json:"entry_timestamp,omitempty" example:"2025-12-24T09:33"`
}

// Fields lists the names of the recovered fields, in declaration order.
func (r Result) Fields() []string {
	var out []string
	if r.Symbol != "" {
		out = append(out, "symbol")
	}
	if r.Direction != "" {
		out = append(out, "direction")
	}
	if r.LotSize != nil {
		out = append(out, "lot_size")
	}
	if r.EntryPrice != nil {
		out = append(out, "entry_price")
	}
	if r.StopLoss != nil {
		out = append(out, "stop_loss")
	}
	if r.TakeProfit != nil {
		out = append(out, "take_profit")
	}
	if r.EntryTimestamp != "" {
		out = append(out, "entry_timestamp")
	}
	return out
}

// IsEmpty reports whether nothing was recovered.
func (r Result) IsEmpty() bool { return len(r.Fields()) == 0 }

func floatPtr(v float64) *float64 { return &v }
