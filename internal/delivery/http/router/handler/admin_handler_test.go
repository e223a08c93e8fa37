package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockUsecase "nightmap/internal/mocks/usecase"
	"nightmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminTestHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	t.Helper()

	adminUsecase := mockUsecase.NewMockAdminUsecase(t)

	return NewAdminHandler(adminUsecase, slog.New(slog.NewTextHandler(io.Discard, nil))), adminUsecase
}

func TestAdminHandler_SaveActivityCreates(t *testing.T) {
	handler, adminUsecase := newAdminTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/activities",
		strings.NewReader(`{"name":"Club Nine","city":"Bucharest","is_active":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	adminUsecase.On("SaveActivity", mock.Anything, mock.MatchedBy(func(input *usecase.SaveActivityInput) bool {
		return input.ID == 0 && input.Name == "Club Nine" && input.City == "Bucharest" && input.IsActive
	})).Return(&usecase.ActivityView{ID: 12, Name: "Club Nine", City: "Bucharest", IsActive: true}, nil)

	require.NoError(t, handler.SaveActivity(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":12`)
}

func TestAdminHandler_UpdateActivityTakesIDFromPath(t *testing.T) {
	handler, adminUsecase := newAdminTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/admin/activities/12",
		strings.NewReader(`{"name":"Club Nine Renamed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("12")

	adminUsecase.On("SaveActivity", mock.Anything, mock.MatchedBy(func(input *usecase.SaveActivityInput) bool {
		return input.ID == 12 && input.Name == "Club Nine Renamed"
	})).Return(&usecase.ActivityView{ID: 12, Name: "Club Nine Renamed"}, nil)

	require.NoError(t, handler.UpdateActivity(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_ImportActivities(t *testing.T) {
	handler, adminUsecase := newAdminTestHandler(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "activities.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("name\nClub Nine\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/activities/import", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	adminUsecase.On("ImportActivities", mock.Anything, mock.Anything).
		Return(&usecase.ImportSummary{Created: 1}, nil)

	require.NoError(t, handler.ImportActivities(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":1`)
}

func TestAdminHandler_ImportActivitiesRequiresFile(t *testing.T) {
	handler, _ := newAdminTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/activities/import", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ImportActivities(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAdminHandler_ExportActivitiesStreamsCSV(t *testing.T) {
	handler, adminUsecase := newAdminTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/activities/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	adminUsecase.On("ExportActivities", mock.Anything, mock.Anything).
		Return(func(w io.Writer) error {
			_, err := w.Write([]byte("id,name\n5,Club Nine\n"))

			return err
		})

	require.NoError(t, handler.ExportActivities(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "activities.csv")
	assert.Contains(t, rec.Body.String(), "5,Club Nine")
}
