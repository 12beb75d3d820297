package models

import (
	"time"

	"github.com/google/uuid"
)

// Direction is the side of a trade.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == DirectionLong || d == DirectionShort
}

// Status is the lifecycle state of a journaled trade.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

// Trade represents a single journaled position.
//
// Optional numeric and date fields are pointers: nil means the value was
// never provided, which is different from zero (e.g. a break-even PnL).
//
// Journal fields (EntryReason, Notes, AfterReview) are free text and
// default to empty strings. Screenshots holds public paths under /uploads.
type Trade struct {
	ID          uuid.UUID  `json:"id"`
	Symbol      string     `json:"symbol" example:"GBPUSD"`
	Direction   Direction  `json:"direction" example:"short"`
	EntryPrice  float64    `json:"entry_price" example:"1.35119"`
	ExitPrice   *float64   `json:"exit_price,omitempty"`
	StopLoss    *float64   `json:"stop_loss,omitempty"`
	TakeProfit  *float64   `json:"take_profit,omitempty"`
	LotSize     float64    `json:"lot_size" example:"1.1"`
	EntryDate   time.Time  `json:"entry_date"`
	ExitDate    *time.Time `json:"exit_date,omitempty"`
	PnL         *float64   `json:"pnl,omitempty"`
	PnLPercent  *float64   `json:"pnl_percent,omitempty"`
	Status      Status     `json:"status" example:"open"`
	EntryReason string     `json:"entry_reason"`
	Notes       string     `json:"notes"`
	AfterReview string     `json:"after_review"`
	Screenshots []string   `json:"screenshots"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CloseDate is the moment a closed trade is attributed to in period
// statistics: the exit date when known, else the last update, else the entry.
func (t Trade) CloseDate() time.Time {
	if t.ExitDate != nil && !t.ExitDate.IsZero() {
		return *t.ExitDate
	}
	if !t.UpdatedAt.IsZero() {
		return t.UpdatedAt
	}
	return t.EntryDate
}

// PnLValue returns the realized PnL, treating an unset value as zero.
func (t Trade) PnLValue() float64 {
	if t.PnL == nil {
		return 0
	}
	return *t.PnL
}

// TradeFilter narrows a trade listing. Zero values mean "no constraint".
type TradeFilter struct {
	Status    Status
	Symbol    string
	StartDate *time.Time
	EndDate   *time.Time
	Sort      string
	Limit     int
}
