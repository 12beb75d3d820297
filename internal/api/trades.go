package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradelens/internal/domain/dto"
	"github.com/guttosm/tradelens/internal/domain/models"
	"github.com/guttosm/tradelens/internal/middleware"
)

type listQuery struct {
	Status    string `form:"status" binding:"omitempty,oneof=open closed"`
	Symbol    string `form:"symbol"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Sort      string `form:"sort"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// ListTrades godoc
// @Summary      List trades
// @Description  Returns journaled trades, newest entry first unless sort says otherwise
// @Tags         trades
// @Produce      json
// @Param        status      query     string  false  "open or closed"
// @Param        symbol      query     string  false  "Instrument code" example(GBPUSD)
// @Param        start_date  query     string  false  "Minimum entry date" example(2025-12-01)
// @Param        end_date    query     string  false  "Maximum entry date" example(2025-12-31)
// @Param        sort        query     string  false  "entry_date, created_at, symbol or pnl; prefix with - for descending" example(-entry_date)
// @Param        limit       query     int     false  "Maximum number of trades"
// @Success      200  {array}   models.Trade
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/trades [get]
func (h *Handler) ListTrades(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	filter := models.TradeFilter{
		Status: models.Status(q.Status),
		Symbol: q.Symbol,
		Sort:   strings.TrimSpace(q.Sort),
		Limit:  q.Limit,
	}
	var ok bool
	if filter.StartDate, ok = h.queryDate(c, "start_date", q.StartDate); !ok {
		return
	}
	if filter.EndDate, ok = h.queryDate(c, "end_date", q.EndDate); !ok {
		return
	}

	trades, err := h.trades.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err, "Error fetching trades")
		return
	}
	c.JSON(http.StatusOK, trades)
}

func (h *Handler) queryDate(c *gin.Context, name, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	d, err := dto.ParseDate(raw, h.opts.Location)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "Invalid "+name, err)
		return nil, false
	}
	return &d, true
}

// GetTrade godoc
// @Summary      Get trade
// @Tags         trades
// @Produce      json
// @Param        id   path      string  true  "Trade ID"
// @Success      200  {object}  models.Trade
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/trades/{id} [get]
func (h *Handler) GetTrade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.trades.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Error fetching trade")
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTrade godoc
// @Summary      Create trade
// @Description  Journals a new trade. Open trades never keep exit price, exit date or pnl.
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        trade  body      dto.TradeRequest  true  "Trade form"
// @Success      201    {object}  models.Trade
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/v1/trades [post]
func (h *Handler) CreateTrade(c *gin.Context) {
	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "Error creating trade", err)
		return
	}
	t, err := req.ToTrade(h.opts.Location)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "Error creating trade", err)
		return
	}
	if err := h.trades.Create(c.Request.Context(), &t); err != nil {
		fail(c, err, "Error creating trade")
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTrade godoc
// @Summary      Update trade
// @Description  Partial update; omitted fields keep their values
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        id     path      string           true  "Trade ID"
// @Param        trade  body      dto.TradeUpdate  true  "Fields to change"
// @Success      200    {object}  models.Trade
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/v1/trades/{id} [put]
func (h *Handler) UpdateTrade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch dto.TradeUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "Error updating trade", err)
		return
	}
	t, err := h.trades.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err, "Error updating trade")
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTrade godoc
// @Summary      Delete trade
// @Tags         trades
// @Produce      json
// @Param        id   path      string  true  "Trade ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/trades/{id} [delete]
func (h *Handler) DeleteTrade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.trades.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "Error deleting trade")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Trade deleted successfully"})
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Win rate, profit factor and period PnL over closed trades
// @Tags         trades
// @Produce      json
// @Success      200  {object}  models.DashboardStats
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/trades/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.trades.Stats(c.Request.Context(), h.clock())
	if err != nil {
		fail(c, err, "Error fetching stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
