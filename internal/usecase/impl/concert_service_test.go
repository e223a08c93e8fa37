package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nightmap/internal/domain/entity"
	domainerrors "nightmap/internal/domain/errors"
	mockRepo "nightmap/internal/mocks/repository"
	"nightmap/internal/usecase"
)

func createTestConcertService(t *testing.T) (usecase.ConcertUsecase, *mockRepo.MockConcertRepository) {
	concertRepo := mockRepo.NewMockConcertRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewConcertService(ConcertServiceParams{
		ConcertRepo: concertRepo,
		Logger:      logger,
	})

	return service, concertRepo
}

func TestConcertService_ListConcerts(t *testing.T) {
	service, concertRepo := createTestConcertService(t)
	ctx := context.Background()

	date := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)
	concertRepo.On("List", ctx).Return([]*entity.ConcertEvent{
		{ID: 1, Name: "Open Air", Latitude: 44.43, Longitude: 26.10, Date: date},
	}, nil)

	views, err := service.ListConcerts(ctx)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Open Air", views[0].Name)
	assert.Equal(t, date, views[0].Date)
}

func TestConcertService_CreateConcert(t *testing.T) {
	service, concertRepo := createTestConcertService(t)
	ctx := context.Background()

	date := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)
	concertRepo.On("Create", ctx, mock.AnythingOfType("*entity.ConcertEvent")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.ConcertEvent).ID = 8
		}).
		Return(nil)

	view, err := service.CreateConcert(ctx, &usecase.CreateConcertInput{
		Name:      "Open Air",
		Latitude:  44.43,
		Longitude: 26.10,
		Date:      date,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(8), view.ID)
	assert.Equal(t, "Open Air", view.Name)
}

func TestConcertService_CreateConcert_Validation(t *testing.T) {
	service, _ := createTestConcertService(t)
	ctx := context.Background()

	_, err := service.CreateConcert(ctx, &usecase.CreateConcertInput{Date: time.Now()})
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "name")

	_, err = service.CreateConcert(ctx, &usecase.CreateConcertInput{Name: "Open Air"})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "date")
}
