package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gamedash/config"
	"gamedash/internal/delivery/http/response"
	"gamedash/internal/domain/entity"
	domainerrors "gamedash/internal/domain/errors"
	"gamedash/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// allowedImageExtensions lists the upload types accepted for review images.
var allowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// ReviewHandler holds dependencies for review handlers, including image uploads.
type ReviewHandler struct {
	uc         usecase.ReviewUsecase
	uploadsDir string
	publicURL  string
	logger     *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, cfg *config.Config, logger *slog.Logger) *ReviewHandler {
	uploadsDir := "static/uploads"
	publicURL := "/static/uploads"
	if cfg.Uploads != nil {
		if cfg.Uploads.Dir != "" {
			uploadsDir = cfg.Uploads.Dir
		}
		if cfg.Uploads.PublicURL != "" {
			publicURL = cfg.Uploads.PublicURL
		}
	}

	return &ReviewHandler{uc: uc, uploadsDir: uploadsDir, publicURL: publicURL, logger: logger}
}

type createReviewRequest struct {
	GameID     int64  `json:"game_id" validate:"required,gt=0"`
	ReviewText string `json:"review_text" validate:"required"`
	Rating     *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

type createNestedReviewRequest struct {
	ReviewText string `json:"review_text" validate:"required"`
	Rating     *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

type updateReviewRequest struct {
	ReviewText *string `json:"review_text" validate:"omitempty,min=1"`
	Rating     *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

type reviewResponse struct {
	ID            int64     `json:"id"`
	GameID        int64     `json:"game_id"`
	UserID        *int64    `json:"user_id,omitempty"`
	ReviewText    string    `json:"review_text"`
	Rating        *int      `json:"rating,omitempty"`
	ImageFilename string    `json:"image_filename,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toReviewResponse(r *entity.Review) reviewResponse {
	return reviewResponse{
		ID:            r.ID,
		GameID:        r.GameID,
		UserID:        r.UserID,
		ReviewText:    r.ReviewText,
		Rating:        r.Rating,
		ImageFilename: r.ImageFilename,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ListReviews returns reviews, optionally filtered by game_id.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	var gameID int64
	if raw := c.QueryParam("game_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "invalid game_id filter")
		}
		gameID = parsed
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), gameID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// ListGameReviews returns the reviews posted for one game.
func (h *ReviewHandler) ListGameReviews(c echo.Context) error {
	gameID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid game id")
	}

	reviews, err := h.uc.ListGameReviews(c.Request().Context(), gameID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// CreateGameReview posts a review for the game in the path.
func (h *ReviewHandler) CreateGameReview(c echo.Context) error {
	gameID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid game id")
	}

	var req createNestedReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		GameID:     gameID,
		ReviewText: req.ReviewText,
		Rating:     req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "review created")
}

// GetReview returns a single review by ID.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid review id")
	}

	review, err := h.uc.GetReview(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "")
}

// CreateReview posts a new review authored by the caller.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		GameID:     req.GameID,
		ReviewText: req.ReviewText,
		Rating:     req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "review created")
}

// UpdateReview modifies a review; omitted fields keep their values.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid review id")
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), id, usecase.UpdateReviewInput{
		ReviewText: req.ReviewText,
		Rating:     req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "review updated")
}

// DeleteReview soft-deletes a review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid review id")
	}

	if err := h.uc.DeleteReview(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadImage accepts a multipart image for a review. The file is stored
// under a server-generated name; the client's filename is never trusted
// beyond its extension.
func (h *ReviewHandler) UploadImage(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid review id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "missing image file")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return errors.WithStack(domainerrors.ErrUnsupportedFileType)
	}

	filename := "img_" + uuid.New().String() + ext

	if err := h.saveUpload(fileHeader, filename); err != nil {
		h.logger.Error("Failed to store upload", slog.String("filename", filename), slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrInternalError)
	}

	previous, err := h.uc.AttachImage(c.Request().Context(), id, filename)
	if err != nil {
		// The review rejected the attachment; do not leave the orphan on disk.
		_ = os.Remove(filepath.Join(h.uploadsDir, filename))

		return errors.WithStack(err)
	}

	if previous != "" {
		if err := os.Remove(filepath.Join(h.uploadsDir, previous)); err != nil && !os.IsNotExist(err) {
			h.logger.Warn("Failed to remove replaced upload", slog.String("filename", previous), slog.Any("error", err))
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"image_filename": filename,
		"image_url":      h.publicURL + "/" + filename,
	}, "image uploaded")
}

func (h *ReviewHandler) saveUpload(fileHeader *multipart.FileHeader, filename string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create uploads dir")
	}

	dst, err := os.Create(filepath.Join(h.uploadsDir, filename))
	if err != nil {
		return errors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrap(err, "failed to write upload file")
	}

	return nil
}
