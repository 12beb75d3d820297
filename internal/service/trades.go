package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/tradelens/internal/domain/dto"
	"github.com/guttosm/tradelens/internal/domain/models"
	"github.com/guttosm/tradelens/internal/storage"
)

var (
	// ErrTradeNotFound is returned for operations on a missing trade.
	ErrTradeNotFound = errors.New("trade not found")
	// ErrInvalidTrade wraps validation failures of trade input or filters.
	ErrInvalidTrade = errors.New("invalid trade")
	// ErrScreenshotNotFound is returned when removing a screenshot the
	// trade does not hold.
	ErrScreenshotNotFound = errors.New("screenshot not found")
)

// RecentTradesLimit is the number of trades shown on the dashboard.
const RecentTradesLimit = 5

// TradeService defines the journal's business logic on top of storage.
type TradeService interface {
	List(ctx context.Context, filter models.TradeFilter) ([]models.Trade, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Trade, error)
	Create(ctx context.Context, t *models.Trade) error
	Update(ctx context.Context, id uuid.UUID, patch dto.TradeUpdate) (*models.Trade, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddScreenshots(ctx context.Context, id uuid.UUID, paths []string) (*models.Trade, error)
	RemoveScreenshot(ctx context.Context, id uuid.UUID, path string) (*models.Trade, error)
	Stats(ctx context.Context, now time.Time) (*models.DashboardStats, error)
}

type tradeService struct {
	repo storage.TradesRepository
	loc  *time.Location
}

// NewTradeService wires the repository. Form dates without a zone are read in loc.
func NewTradeService(repo storage.TradesRepository, loc *time.Location) TradeService {
	if loc == nil {
		loc = time.Local
	}
	return &tradeService{repo: repo, loc: loc}
}

func (s *tradeService) List(ctx context.Context, filter models.TradeFilter) ([]models.Trade, error) {
	filter.Symbol = strings.ToUpper(strings.TrimSpace(filter.Symbol))
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidTrade, filter.Status)
	}
	trades, err := s.repo.List(ctx, filter)
	if errors.Is(err, storage.ErrInvalidSort) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTrade, err)
	}
	return trades, err
}

func (s *tradeService) Get(ctx context.Context, id uuid.UUID) (*models.Trade, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTradeNotFound
	}
	return t, nil
}

func (s *tradeService) Create(ctx context.Context, t *models.Trade) error {
	if t.Status == "" {
		t.Status = models.StatusOpen
	}
	if err := prepare(t); err != nil {
		return err
	}
	return s.repo.Create(ctx, t)
}

func (s *tradeService) Update(ctx context.Context, id uuid.UUID, patch dto.TradeUpdate) (*models.Trade, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch.ApplyTo(t, s.loc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTrade, err)
	}
	if err := prepare(t); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (s *tradeService) Delete(ctx context.Context, id uuid.UUID) error {
	return notFound(s.repo.Delete(ctx, id))
}

func (s *tradeService) AddScreenshots(ctx context.Context, id uuid.UUID, paths []string) (*models.Trade, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no screenshots", ErrInvalidTrade)
	}
	t, err := s.repo.AddScreenshots(ctx, id, paths)
	return t, notFound(err)
}

func (s *tradeService) RemoveScreenshot(ctx context.Context, id uuid.UUID, path string) (*models.Trade, error) {
	t, err := s.repo.RemoveScreenshot(ctx, id, path)
	if errors.Is(err, storage.ErrScreenshotNotAttached) {
		return nil, fmt.Errorf("%w: %s", ErrScreenshotNotFound, path)
	}
	return t, notFound(err)
}

// Stats loads closed trades, the open count and the most recent trades
// concurrently, then summarizes them relative to now.
func (s *tradeService) Stats(ctx context.Context, now time.Time) (*models.DashboardStats, error) {
	var (
		closed, recent []models.Trade
		openCount      int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		closed, err = s.repo.List(gctx, models.TradeFilter{Status: models.StatusClosed})
		return err
	})
	g.Go(func() error {
		var err error
		openCount, err = s.repo.CountByStatus(gctx, models.StatusOpen)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.repo.List(gctx, models.TradeFilter{Sort: storage.DefaultSort, Limit: RecentTradesLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats := ComputeStats(closed, openCount, recent, now)
	return &stats, nil
}

// prepare normalizes and validates t in place. Open trades never carry
// exit data.
func prepare(t *models.Trade) error {
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
	if t.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidTrade)
	}
	if !t.Direction.Valid() {
		return fmt.Errorf("%w: direction %q", ErrInvalidTrade, t.Direction)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidTrade, t.Status)
	}
	if t.EntryDate.IsZero() {
		return fmt.Errorf("%w: entry date is required", ErrInvalidTrade)
	}
	if t.Status == models.StatusOpen {
		t.ExitPrice = nil
		t.ExitDate = nil
		t.PnL = nil
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrTradeNotFound
	}
	return err
}
