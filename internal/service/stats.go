package service

import (
	"math"
	"time"

	"github.com/guttosm/tradelens/internal/domain/models"
)

// ComputeStats summarizes closed trades for the dashboard. Period PnL is
// attributed by each trade's close date, in now's location; weeks start on
// Sunday. Monetary values and ratios are rounded to two decimals.
func ComputeStats(closed []models.Trade, openCount int, recent []models.Trade, now time.Time) models.DashboardStats {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		wins, losses               int
		total, grossWin, grossLoss float64
		daily, weekly, monthly     float64
	)
	for _, t := range closed {
		pnl := t.PnLValue()
		total += pnl
		switch {
		case pnl > 0:
			wins++
			grossWin += pnl
		case pnl < 0:
			losses++
			grossLoss += -pnl
		}

		closedAt := t.CloseDate()
		if !closedAt.Before(startOfMonth) {
			monthly += pnl
		}
		if !closedAt.Before(startOfWeek) {
			weekly += pnl
		}
		if !closedAt.Before(startOfDay) {
			daily += pnl
		}
	}

	stats := models.DashboardStats{
		TotalTrades:     len(closed),
		WinningTrades:   wins,
		LosingTrades:    losses,
		TotalPnL:        round2(total),
		OpenTradesCount: openCount,
		RecentTrades:    recent,
		DailyPnL:        round2(daily),
		WeeklyPnL:       round2(weekly),
		MonthlyPnL:      round2(monthly),
	}
	if stats.RecentTrades == nil {
		stats.RecentTrades = []models.Trade{}
	}
	if len(closed) > 0 {
		stats.WinRate = round2(float64(wins) / float64(len(closed)) * 100)
	}
	switch {
	case grossLoss > 0:
		stats.ProfitFactor = models.ProfitFactor{Value: round2(grossWin / grossLoss)}
	case grossWin > 0:
		stats.ProfitFactor = models.ProfitFactor{Undefined: true}
	}
	if wins > 0 {
		stats.AvgWin = round2(grossWin / float64(wins))
	}
	if losses > 0 {
		stats.AvgLoss = round2(grossLoss / float64(losses))
	}
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
