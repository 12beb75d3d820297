package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradelens/internal/domain/dto"
	"github.com/guttosm/tradelens/internal/logger"
	"github.com/guttosm/tradelens/internal/middleware"
	"github.com/guttosm/tradelens/internal/service"
)

// ExtractFailedMessage is shown when a screenshot cannot be read.
const ExtractFailedMessage = "Failed to extract data from screenshot. Try a clearer image."

// ExtractScreenshot godoc
// @Summary      Extract trade fields from an MT5 screenshot
// @Description  Runs OCR on the image and parses symbol, direction, lot, entry, SL, TP and entry time.
// @Description  The optional draft form is returned with every extracted field applied; absent fields keep the draft values.
// @Tags         extract
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file    true   "Screenshot"
// @Param        draft  formData  string  false  "Current form state as JSON (dto.TradeRequest)"
// @Success      200  {object}  dto.ExtractResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/v1/extract [post]
func (h *Handler) ExtractScreenshot(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "image is required", err)
		return
	}
	data, err := readUpload(fh, h.opts.MaxUploadBytes)
	if err != nil {
		uploadError(c, err)
		return
	}

	draft := dto.NewDraft(h.clock())
	if raw := c.PostForm("draft"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &draft); err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "Invalid draft", err)
			return
		}
	}

	ctx := c.Request.Context()
	if h.opts.OCRTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.OCRTimeout)
		defer cancel()
	}

	rid := c.GetString(middleware.RequestIDKey)
	progress := func(p int) {
		logger.L().Debug().Str("request_id", rid).Int("progress", p).Msg("ocr progress")
	}

	res, err := h.screenshots.Extract(ctx, data, progress)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			status = http.StatusGatewayTimeout
		case errors.Is(err, service.ErrExtractionFailed):
			status = http.StatusUnprocessableEntity
		}
		middleware.AbortWithError(c, status, ExtractFailedMessage, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExtractResponse(res, draft))
}

// ExtractText godoc
// @Summary      Extract trade fields from recognized text
// @Description  Parses text already produced by an OCR engine
// @Tags         extract
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ExtractTextRequest  true  "Raw OCR text"
// @Success      200   {object}  dto.ExtractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/extract/text [post]
func (h *Handler) ExtractText(c *gin.Context) {
	var req dto.ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "text is required", err)
		return
	}
	res := h.screenshots.ParseText(req.Text)
	c.JSON(http.StatusOK, dto.NewExtractResponse(res, dto.NewDraft(h.clock())))
}
