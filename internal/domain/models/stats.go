package models

import (
	"encoding/json"
	"strconv"
)

// ProfitFactor is gross wins divided by gross losses. When there are wins
// but no losses the ratio is undefined and serializes as "N/A".
type ProfitFactor struct {
	Value     float64
	Undefined bool
}

// MarshalJSON renders the factor as a number, or the string "N/A".
func (p ProfitFactor) MarshalJSON() ([]byte, error) {
	if p.Undefined {
		return []byte(`"N/A"`), nil
	}
	return []byte(strconv.FormatFloat(p.Value, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts either a number or "N/A".
func (p *ProfitFactor) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = ProfitFactor{Undefined: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = ProfitFactor{Value: v}
	return nil
}

// String implements fmt.Stringer.
func (p ProfitFactor) String() string {
	if p.Undefined {
		return "N/A"
	}
	return strconv.FormatFloat(p.Value, 'f', -1, 64)
}

// DashboardStats summarizes closed trades for the dashboard.
//
// swagger:model DashboardStats
type DashboardStats struct {
	TotalTrades     int          `json:"total_trades"`
	WinningTrades   int          `json:"winning_trades"`
	LosingTrades    int          `json:"losing_trades"`
	TotalPnL        float64      `json:"total_pnl"`
	WinRate         float64      `json:"win_rate"`
	ProfitFactor    ProfitFactor `json:"profit_factor" swaggertype:"string" example:"1.75"`
	AvgWin          float64      `json:"avg_win"`
	AvgLoss         float64      `json:"avg_loss"`
	OpenTradesCount int          `json:"open_trades_count"`
	RecentTrades    []Trade      `json:"recent_trades"`
	DailyPnL        float64      `json:"daily_pnl"`
	WeeklyPnL       float64      `json:"weekly_pnl"`
	MonthlyPnL      float64      `json:"monthly_pnl"`
}
