package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/tradelens/internal/domain/models"
	"github.com/guttosm/tradelens/internal/extraction"
)

// Draft defaults for a new trade form.
const (
	DraftSymbol  = "GBPUSD"
	DraftLotSize = 0.01
)

// ErrInvalidDate is returned when a date field matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order when parsing form dates.
var dateLayouts = []string{
	extraction.TimestampLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a form date in loc. Zone-less layouts are read as local
// wall-clock time, the way the entry form submits them.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// TradeRequest is the state of the trade entry form. It is both the body
// of POST /trades and the draft returned by screenshot extraction.
//
// swagger:model TradeRequest
type TradeRequest struct {
	Symbol      string   `json:"symbol" binding:"required" example:"GBPUSD"`
	Direction   string   `json:"direction" binding:"required,oneof=long short" example:"short"`
	EntryPrice  float64  `json:"entry_price" binding:"gte=0" example:"1.35119"`
	ExitPrice   *float64 `json:"exit_price,omitempty" binding:"omitempty,gt=0"`
	StopLoss    *float64 `json:"stop_loss,omitempty" binding:"omitempty,gt=0" example:"1.35346"`
	TakeProfit  *float64 `json:"take_profit,omitempty" binding:"omitempty,gt=0" example:"1.34535"`
	LotSize     float64  `json:"lot_size" binding:"gt=0" example:"1.1"`
	EntryDate   string   `json:"entry_date" binding:"required,formdate" example:"2025-12-24T09:33"`
	ExitDate    *string  `json:"exit_date,omitempty" binding:"omitempty,formdate"`
	PnL         *float64 `json:"pnl,omitempty"`
	Status      string   `json:"status" binding:"omitempty,oneof=open closed" example:"open"`
	EntryReason string   `json:"entry_reason"`
	Notes       string   `json:"notes"`
	AfterReview string   `json:"after_review"`
	Tags        []string `json:"tags"`
}

// NewDraft returns the default form a user starts from.
func NewDraft(now time.Time) TradeRequest {
	return TradeRequest{
		Symbol:    DraftSymbol,
		Direction: string(models.DirectionLong),
		LotSize:   DraftLotSize,
		EntryDate: now.Format(extraction.TimestampLayout),
		Status:    string(models.StatusOpen),
		Tags:      []string{},
	}
}

// Overlay copies every field present in res onto the form. Absent fields
// keep their current values.
func (r *TradeRequest) Overlay(res extraction.Result) {
	if res.Symbol != "" {
		r.Symbol = res.Symbol
	}
	if res.Direction != "" {
		r.Direction = string(res.Direction)
	}
	if res.LotSize != nil {
		r.LotSize = *res.LotSize
	}
	if res.EntryPrice != nil {
		r.EntryPrice = *res.EntryPrice
	}
	if res.StopLoss != nil {
		v := *res.StopLoss
		r.StopLoss = &v
	}
	if res.TakeProfit != nil {
		v := *res.TakeProfit
		r.TakeProfit = &v
	}
	if res.EntryTimestamp != "" {
		r.EntryDate = res.EntryTimestamp
	}
}

// ToTrade converts the form into a trade. Dates are interpreted in loc.
func (r TradeRequest) ToTrade(loc *time.Location) (models.Trade, error) {
	entry, err := ParseDate(r.EntryDate, loc)
	if err != nil {
		return models.Trade{}, fmt.Errorf("entry_date: %w", err)
	}
	t := models.Trade{
		Symbol:      r.Symbol,
		Direction:   models.Direction(r.Direction),
		EntryPrice:  r.EntryPrice,
		ExitPrice:   r.ExitPrice,
		StopLoss:    r.StopLoss,
		TakeProfit:  r.TakeProfit,
		LotSize:     r.LotSize,
		EntryDate:   entry,
		PnL:         r.PnL,
		Status:      models.Status(r.Status),
		EntryReason: r.EntryReason,
		Notes:       r.Notes,
		AfterReview: r.AfterReview,
		Tags:        r.Tags,
	}
	if r.ExitDate != nil && strings.TrimSpace(*r.ExitDate) != "" {
		exit, err := ParseDate(*r.ExitDate, loc)
		if err != nil {
			return models.Trade{}, fmt.Errorf("exit_date: %w", err)
		}
		t.ExitDate = &exit
	}
	return t, nil
}

// TradeUpdate is a partial update; nil fields are left untouched.
//
// swagger:model TradeUpdate
type TradeUpdate struct {
	Symbol      *string   `json:"symbol,omitempty"`
	Direction   *string   `json:"direction,omitempty" binding:"omitempty,oneof=long short"`
	EntryPrice  *float64  `json:"entry_price,omitempty" binding:"omitempty,gte=0"`
	ExitPrice   *float64  `json:"exit_price,omitempty" binding:"omitempty,gt=0"`
	StopLoss    *float64  `json:"stop_loss,omitempty" binding:"omitempty,gt=0"`
	TakeProfit  *float64  `json:"take_profit,omitempty" binding:"omitempty,gt=0"`
	LotSize     *float64  `json:"lot_size,omitempty" binding:"omitempty,gt=0"`
	EntryDate   *string   `json:"entry_date,omitempty" binding:"omitempty,formdate"`
	ExitDate    *string   `json:"exit_date,omitempty" binding:"omitempty,formdate"`
	PnL         *float64  `json:"pnl,omitempty"`
	PnLPercent  *float64  `json:"pnl_percent,omitempty"`
	Status      *string   `json:"status,omitempty" binding:"omitempty,oneof=open closed"`
	EntryReason *string   `json:"entry_reason,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	AfterReview *string   `json:"after_review,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// ApplyTo writes the non-nil fields of u onto t.
func (u TradeUpdate) ApplyTo(t *models.Trade, loc *time.Location) error {
	if u.EntryDate != nil {
		d, err := ParseDate(*u.EntryDate, loc)
		if err != nil {
			return fmt.Errorf("entry_date: %w", err)
		}
		t.EntryDate = d
	}
	if u.ExitDate != nil {
		d, err := ParseDate(*u.ExitDate, loc)
		if err != nil {
			return fmt.Errorf("exit_date: %w", err)
		}
		t.ExitDate = &d
	}
	setString(&t.Symbol, u.Symbol)
	setString(&t.EntryReason, u.EntryReason)
	setString(&t.Notes, u.Notes)
	setString(&t.AfterReview, u.AfterReview)
	if u.Direction != nil {
		t.Direction = models.Direction(*u.Direction)
	}
	if u.Status != nil {
		t.Status = models.Status(*u.Status)
	}
	if u.EntryPrice != nil {
		t.EntryPrice = *u.EntryPrice
	}
	if u.LotSize != nil {
		t.LotSize = *u.LotSize
	}
	setFloat(&t.ExitPrice, u.ExitPrice)
	setFloat(&t.StopLoss, u.StopLoss)
	setFloat(&t.TakeProfit, u.TakeProfit)
	setFloat(&t.PnL, u.PnL)
	setFloat(&t.PnLPercent, u.PnLPercent)
	if u.Tags != nil {
		t.Tags = append([]string{}, (*u.Tags)...)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst **float64, v *float64) {
	if v != nil {
		f := *v
		*dst = &f
	}
}
