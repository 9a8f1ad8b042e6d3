// Package handlers implements the HTTP API over the transcription
// service and the history store.
package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "media2text/internal/app/errors"
	"media2text/internal/app/repository"
	"media2text/internal/app/service"
)

// Language hints are either the automatic sentinel or a short BCP 47
// style tag like "en" or "zh-CN".
var languagePattern = regexp.MustCompile(`^(auto|[a-z]{2,3}(-[A-Za-z]{2,8})?)$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
			return languagePattern.MatchString(fl.Field().String())
		})
	}
}

// APIHandler wires the transcription service and history store into
// gin routes.
type APIHandler struct {
	service   *service.Service
	history   repository.HistoryDAO
	providers []string
	uploadDir string
	log       *zap.SugaredLogger
}

func NewAPIHandler(svc *service.Service, history repository.HistoryDAO, providers []string,
	uploadDir string, log *zap.SugaredLogger) *APIHandler {
	return &APIHandler{
		service:   svc,
		history:   history,
		providers: providers,
		uploadDir: uploadDir,
		log:       log,
	}
}

// transcribeForm carries the non-file fields of an upload request.
type transcribeForm struct {
	Language string `form:"language" binding:"omitempty,language"`
}

type transcribeURLRequest struct {
	URL      string `json:"url" binding:"required,url"`
	Language string `json:"language" binding:"omitempty,language"`
}

// Create handles POST /api/v1/transcriptions. The media file arrives
// as multipart field "file"; "language" is optional and defaults to
// automatic detection.
func (h *APIHandler) Create(c *gin.Context) {
	var form transcribeForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}

	uploadPath := filepath.Join(h.uploadDir, uuid.NewString()+"_"+filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, uploadPath); err != nil {
		h.log.Errorw("could not persist upload", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not persist upload"})
		return
	}
	defer os.Remove(uploadPath)

	result, err := h.service.TranscribeFile(c.Request.Context(), uploadPath, form.Language)
	if err != nil {
		h.renderTranscribeError(c, err)
		return
	}
	// The saved upload carries a uuid prefix; report the original name.
	result.SourceName = fileHeader.Filename

	c.JSON(http.StatusCreated, result)
}

// CreateFromURL handles POST /api/v1/transcriptions/url.
func (h *APIHandler) CreateFromURL(c *gin.Context) {
	var req transcribeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.TranscribeURL(c.Request.Context(), req.URL, req.Language)
	if err != nil {
		h.renderTranscribeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *APIHandler) renderTranscribeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnsupportedFormat):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrProviderAuth):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrProviderRateLimit):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrProviderFormat):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// List handles GET /api/v1/transcriptions.
func (h *APIHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", 20, 1, 100)
	offset := intQuery(c, "offset", 0, 0, 1<<30)

	records, err := h.history.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transcriptions": records})
}

// Search handles GET /api/v1/transcriptions/search?q=...
func (h *APIHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}
	limit := intQuery(c, "limit", 20, 1, 100)

	records, err := h.history.Search(query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transcriptions": records})
}

// Get handles GET /api/v1/transcriptions/:id.
func (h *APIHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	record, err := h.history.GetByID(id)
	if errors.Is(err, apperrors.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "transcription not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ToggleFavorite handles POST /api/v1/transcriptions/:id/favorite.
func (h *APIHandler) ToggleFavorite(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	favorite, err := h.history.ToggleFavorite(id)
	if errors.Is(err, apperrors.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "transcription not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "favorite": favorite})
}

// Delete handles DELETE /api/v1/transcriptions/:id.
func (h *APIHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := h.history.Delete(id)
	if errors.Is(err, apperrors.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "transcription not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Providers handles GET /api/v1/providers.
func (h *APIHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": h.providers})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transcription id"})
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, def, min, max int) int {
	value := def
	if raw := c.Query(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			value = parsed
		}
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}
