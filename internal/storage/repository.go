package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	pq "github.com/lib/pq"

	"github.com/guttosm/tradelens/internal/domain/models"
)

var (
	// ErrNotFound is returned by mutations addressed to a missing trade.
	ErrNotFound = errors.New("trade not found")
	// ErrInvalidSort is returned for a sort key outside SortColumns.
	ErrInvalidSort = errors.New("invalid sort")
	// ErrScreenshotNotAttached is returned when the trade exists but does
	// not hold the screenshot being removed.
	ErrScreenshotNotAttached = errors.New("screenshot not attached to trade")
)

// SortColumns maps the public sort keys to ORDER BY clauses.
// A leading "-" means descending.
var SortColumns = map[string]string{
	"entry_date":  "entry_date ASC",
	"-entry_date": "entry_date DESC",
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
	"symbol":      "symbol ASC",
	"-symbol":     "symbol DESC",
	"pnl":         "pnl ASC NULLS FIRST",
	"-pnl":        "pnl DESC NULLS LAST",
}

// DefaultSort is applied when a filter has no sort key.
const DefaultSort = "-entry_date"

const tradeColumns = `id, symbol, direction, entry_price, exit_price, stop_loss, take_profit, lot_size,
	entry_date, exit_date, pnl, pnl_percent, status, entry_reason, notes, after_review,
	screenshots, tags, created_at, updated_at`

// TradesRepository defines contract for DB operations.
//
// GetByID returns (nil, nil) when the trade does not exist; mutations
// return ErrNotFound instead.
type TradesRepository interface {
	List(ctx context.Context, filter models.TradeFilter) ([]models.Trade, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Trade, error)
	Create(ctx context.Context, t *models.Trade) error
	Update(ctx context.Context, t *models.Trade) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddScreenshots(ctx context.Context, id uuid.UUID, paths []string) (*models.Trade, error)
	RemoveScreenshot(ctx context.Context, id uuid.UUID, path string) (*models.Trade, error)
	CountByStatus(ctx context.Context, status models.Status) (int, error)
}

type tradesRepository struct {
	db *sql.DB
}

func NewTradesRepository(db *sql.DB) TradesRepository {
	return &tradesRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (models.Trade, error) {
	var (
		t                               models.Trade
		direction, status               string
		exitPrice, stopLoss, takeProfit sql.NullFloat64
		pnl, pnlPercent                 sql.NullFloat64
		exitDate                        sql.NullTime
		screenshots, tags               []string
	)
	err := row.Scan(
		&t.ID, &t.Symbol, &direction, &t.EntryPrice, &exitPrice, &stopLoss, &takeProfit, &t.LotSize,
		&t.EntryDate, &exitDate, &pnl, &pnlPercent, &status, &t.EntryReason, &t.Notes, &t.AfterReview,
		pq.Array(&screenshots), pq.Array(&tags), &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return t, err
	}
	t.Direction = models.Direction(direction)
	t.Status = models.Status(status)
	t.ExitPrice = nullFloat(exitPrice)
	t.StopLoss = nullFloat(stopLoss)
	t.TakeProfit = nullFloat(takeProfit)
	t.PnL = nullFloat(pnl)
	t.PnLPercent = nullFloat(pnlPercent)
	if exitDate.Valid {
		d := exitDate.Time
		t.ExitDate = &d
	}
	t.Screenshots = nonNil(screenshots)
	t.Tags = nonNil(tags)
	return t, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// toNull maps nil pointers to SQL NULL.
func toNull[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// List returns trades matching filter, ordered by filter.Sort.
func (r *tradesRepository) List(ctx context.Context, filter models.TradeFilter) ([]models.Trade, error) {
	sortKey := filter.Sort
	if sortKey == "" {
		sortKey = DefaultSort
	}
	order, ok := SortColumns[sortKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, filter.Sort)
	}

	// Build dynamic conditions; placeholders follow the order of args.
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	if filter.Symbol != "" {
		add("symbol = $%d", filter.Symbol)
	}
	if filter.StartDate != nil {
		add("entry_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("entry_date <= $%d", *filter.EndDate)
	}

	query := "SELECT " + tradeColumns + " FROM trades"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + order
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID fetches a single trade.
func (r *tradesRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Trade, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+tradeColumns+" FROM trades WHERE id = $1", id)
	t, err := scanTrade(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts t, assigning an ID when missing. Timestamps are set by
// the database and copied back into t.
func (r *tradesRepository) Create(ctx context.Context, t *models.Trade) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.Screenshots = nonNil(t.Screenshots)
	t.Tags = nonNil(t.Tags)
	return r.db.QueryRowContext(ctx, `
		INSERT INTO trades (id, symbol, direction, entry_price, exit_price, stop_loss, take_profit, lot_size,
			entry_date, exit_date, pnl, pnl_percent, status, entry_reason, notes, after_review, screenshots, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at`,
		t.ID, t.Symbol, string(t.Direction), t.EntryPrice, toNull(t.ExitPrice), toNull(t.StopLoss), toNull(t.TakeProfit), t.LotSize,
		t.EntryDate, toNull(t.ExitDate), toNull(t.PnL), toNull(t.PnLPercent), string(t.Status), t.EntryReason, t.Notes, t.AfterReview,
		pq.Array(t.Screenshots), pq.Array(t.Tags),
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// Update overwrites every editable column of t. Screenshots are managed
// through AddScreenshots/RemoveScreenshot and are not touched here.
func (r *tradesRepository) Update(ctx context.Context, t *models.Trade) error {
	t.Tags = nonNil(t.Tags)
	err := r.db.QueryRowContext(ctx, `
		UPDATE trades SET symbol = $2, direction = $3, entry_price = $4, exit_price = $5, stop_loss = $6,
			take_profit = $7, lot_size = $8, entry_date = $9, exit_date = $10, pnl = $11, pnl_percent = $12,
			status = $13, entry_reason = $14, notes = $15, after_review = $16, tags = $17, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		t.ID, t.Symbol, string(t.Direction), t.EntryPrice, toNull(t.ExitPrice), toNull(t.StopLoss),
		toNull(t.TakeProfit), t.LotSize, t.EntryDate, toNull(t.ExitDate), toNull(t.PnL), toNull(t.PnLPercent),
		string(t.Status), t.EntryReason, t.Notes, t.AfterReview, pq.Array(t.Tags),
	).Scan(&t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a trade.
func (r *tradesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trades WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddScreenshots appends paths to the trade's screenshot list.
func (r *tradesRepository) AddScreenshots(ctx context.Context, id uuid.UUID, paths []string) (*models.Trade, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE trades SET screenshots = screenshots || $2::text[], updated_at = NOW()
		WHERE id = $1
		RETURNING `+tradeColumns, id, pq.Array(paths))
	return r.returning(row)
}

// RemoveScreenshot drops every occurrence of path from the list.
//
// Returns:
//   - ErrNotFound when the trade does not exist.
//   - ErrScreenshotNotAttached when the trade exists without path; nothing
//     is written in that case.
func (r *tradesRepository) RemoveScreenshot(ctx context.Context, id uuid.UUID, path string) (*models.Trade, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE trades SET screenshots = array_remove(screenshots, $2), updated_at = NOW()
		WHERE id = $1 AND $2 = ANY(screenshots)
		RETURNING `+tradeColumns, id, path)
	t, err := r.returning(row)
	if !errors.Is(err, ErrNotFound) {
		return t, err
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM trades WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrScreenshotNotAttached
	}
	return nil, ErrNotFound
}

func (r *tradesRepository) returning(row *sql.Row) (*models.Trade, error) {
	t, err := scanTrade(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CountByStatus counts trades in the given status.
func (r *tradesRepository) CountByStatus(ctx context.Context, status models.Status) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trades WHERE status = $1`, string(status)).Scan(&n)
	return n, err
}
