package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradelens/internal/logger"
	"github.com/guttosm/tradelens/internal/middleware"
	"github.com/guttosm/tradelens/internal/ocr"
	"github.com/guttosm/tradelens/internal/storage"
)

var errTooLarge = errors.New("file too large")

// readUpload reads at most limit bytes of an uploaded file.
func readUpload(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	if fh.Size > limit {
		return nil, fmt.Errorf("%w: %s", errTooLarge, fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s", errTooLarge, fh.Filename)
	}
	return data, nil
}

// uploadError answers for a failed readUpload or image check.
func uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errTooLarge):
		middleware.AbortWithError(c, http.StatusRequestEntityTooLarge, "File too large", err)
	case errors.Is(err, ocr.ErrUnsupportedImage), errors.Is(err, ocr.ErrEmptyImage):
		middleware.AbortWithError(c, http.StatusUnsupportedMediaType, "Only image files are allowed", err)
	default:
		middleware.AbortWithError(c, http.StatusBadRequest, "Invalid upload", err)
	}
}

// AddScreenshots godoc
// @Summary      Attach screenshots
// @Description  Stores up to 10 images and appends their public paths to the trade
// @Tags         screenshots
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true  "Trade ID"
// @Param        screenshots  formData  file    true  "Image files"
// @Success      200  {object}  models.Trade
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Failure      415  {object}  dto.ErrorResponse
// @Router       /api/v1/trades/{id}/screenshots [post]
func (h *Handler) AddScreenshots(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if h.uploads == nil {
		middleware.AbortWithError(c, http.StatusServiceUnavailable, "Uploads are disabled", nil)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "No files uploaded", err)
		return
	}
	files := form.File["screenshots"]
	switch {
	case len(files) == 0:
		middleware.AbortWithError(c, http.StatusBadRequest, "No files uploaded", nil)
		return
	case len(files) > MaxScreenshotsPerCall:
		middleware.AbortWithError(c, http.StatusBadRequest,
			fmt.Sprintf("At most %d files per upload", MaxScreenshotsPerCall), nil)
		return
	}

	// validate everything before writing anything
	type upload struct {
		data []byte
		ext  string
	}
	uploads := make([]upload, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh, h.opts.MaxUploadBytes)
		if err != nil {
			uploadError(c, err)
			return
		}
		mime, err := ocr.DetectImage(data)
		if err != nil {
			uploadError(c, err)
			return
		}
		uploads = append(uploads, upload{data: data, ext: ocr.ImageExtension(mime)})
	}

	paths := make([]string, 0, len(uploads))
	for _, u := range uploads {
		p, err := h.uploads.Save(u.data, u.ext)
		if err != nil {
			h.discard(paths)
			middleware.AbortWithError(c, http.StatusInternalServerError, "Error uploading screenshots", err)
			return
		}
		paths = append(paths, p)
	}

	t, err := h.trades.AddScreenshots(c.Request.Context(), id, paths)
	if err != nil {
		h.discard(paths)
		fail(c, err, "Error uploading screenshots")
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteScreenshot godoc
// @Summary      Detach screenshot
// @Description  Removes the screenshot from the trade and deletes the stored file. 404 when the trade does not hold it; the file is left untouched
// @Tags         screenshots
// @Produce      json
// @Param        id    path      string  true  "Trade ID"
// @Param        name  path      string  true  "Stored file name"
// @Success      200  {object}  models.Trade
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/trades/{id}/screenshots/{name} [delete]
func (h *Handler) DeleteScreenshot(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if h.uploads == nil {
		middleware.AbortWithError(c, http.StatusServiceUnavailable, "Uploads are disabled", nil)
		return
	}
	name := c.Param("name")
	if name == "" || name[0] == '.' {
		middleware.AbortWithError(c, http.StatusBadRequest, "Invalid screenshot name", storage.ErrInvalidFileName)
		return
	}

	t, err := h.trades.RemoveScreenshot(c.Request.Context(), id, h.uploads.PublicPath(name))
	if err != nil {
		fail(c, err, "Error deleting screenshot")
		return
	}
	if err := h.uploads.Remove(name); err != nil {
		logger.L().Warn().Err(err).Str("file", name).Msg("screenshot file not removed")
	}
	c.JSON(http.StatusOK, t)
}

// discard removes files saved for a request that failed afterwards.
func (h *Handler) discard(paths []string) {
	for _, p := range paths {
		name := path.Base(p)
		if err := h.uploads.Remove(name); err != nil {
			logger.L().Warn().Err(err).Str("file", name).Msg("orphan upload not removed")
		}
	}
}
