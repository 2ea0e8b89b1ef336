package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamedash/config"
	"gamedash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// The stubs embed their interface so only the methods a test touches need
// implementations.
type stubGameUsecase struct {
	usecase.GameUsecase
	deletedID int64
}

func (s *stubGameUsecase) DeleteGame(_ context.Context, id int64) error {
	s.deletedID = id
	return nil
}

type stubReviewUsecase struct {
	usecase.ReviewUsecase
	deletedID int64
}

func (s *stubReviewUsecase) DeleteReview(_ context.Context, id int64) error {
	s.deletedID = id
	return nil
}

type stubActivityUsecase struct {
	usecase.ActivityUsecase
	deletedID int64
}

func (s *stubActivityUsecase) DeleteActivity(_ context.Context, id int64) error {
	s.deletedID = id
	return nil
}

func newDeleteContext(t *testing.T, target, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c, rec
}

// Successful deletes answer 204 with an empty body.
func TestDeleteGame_NoContent(t *testing.T) {
	uc := &stubGameUsecase{}
	h := NewGameHandler(uc, newDiscardLogger())

	c, rec := newDeleteContext(t, "/games/7", "7")
	require.NoError(t, h.DeleteGame(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, int64(7), uc.deletedID)
}

func TestDeleteReview_NoContent(t *testing.T) {
	uc := &stubReviewUsecase{}
	h := NewReviewHandler(uc, &config.Config{}, newDiscardLogger())

	c, rec := newDeleteContext(t, "/reviews/12", "12")
	require.NoError(t, h.DeleteReview(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, int64(12), uc.deletedID)
}

func TestDeleteActivity_NoContent(t *testing.T) {
	uc := &stubActivityUsecase{}
	h := NewActivityHandler(uc, newDiscardLogger())

	c, rec := newDeleteContext(t, "/activities/3", "3")
	require.NoError(t, h.DeleteActivity(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, int64(3), uc.deletedID)
}
