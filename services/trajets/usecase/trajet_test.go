package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colisgo/colisgo/internal/pkg/apperror"
	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/services/trajets/mocks"
)

func newTestUC(t *testing.T) (*gomock.Controller, *mocks.MockTrajetRepo, *trajetUC) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockTrajetRepo(ctrl)
	cfg := &models.Config{
		Trajets: models.TrajetsConfig{SearchRangeDays: 15},
	}
	uc := NewTrajetUC(cfg, mockRepo).(*trajetUC)
	return ctrl, mockRepo, uc
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSearchWindow(t *testing.T) {
	today := utcDate(2026, time.March, 10)

	tests := []struct {
		name      string
		date      time.Time
		rangeDays int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "window fully in the future",
			date:      utcDate(2026, time.April, 20),
			rangeDays: 15,
			wantStart: utcDate(2026, time.April, 5),
			wantEnd:   utcDate(2026, time.May, 5),
		},
		{
			name:      "start clamped to today",
			date:      utcDate(2026, time.March, 15),
			rangeDays: 15,
			wantStart: today,
			wantEnd:   utcDate(2026, time.March, 30),
		},
		{
			name:      "date equals today",
			date:      today,
			rangeDays: 15,
			wantStart: today,
			wantEnd:   utcDate(2026, time.March, 25),
		},
		{
			name:      "narrow window",
			date:      utcDate(2026, time.June, 1),
			rangeDays: 2,
			wantStart: utcDate(2026, time.May, 30),
			wantEnd:   utcDate(2026, time.June, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := searchWindow(tt.date, today, tt.rangeDays)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestSearchTrajets_PastDateRefused(t *testing.T) {
	ctrl, _, uc := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.SearchTrajets(context.Background(), &models.TrajetSearchParams{
		From: "Paris",
		To:   "Dakar",
		Mode: models.TransportModeAir,
		Date: "2000-01-01",
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestSearchTrajets_MalformedDate(t *testing.T) {
	ctrl, _, uc := newTestUC(t)
	defer ctrl.Finish()

	for _, date := range []string{"", "not-a-date", "01/02/2026"} {
		_, err := uc.SearchTrajets(context.Background(), &models.TrajetSearchParams{
			From: "Paris",
			To:   "Dakar",
			Mode: models.TransportModeSea,
			Date: date,
		})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}
}

func TestSearchTrajets_DefaultRangeAndForwardClamp(t *testing.T) {
	ctrl, mockRepo, uc := newTestUC(t)
	defer ctrl.Finish()

	// searching for today: the naive window would start 15 days ago, the
	// clamp must pull it forward to today
	today := todayUTC()
	date := today.Format(dateLayout)

	mockRepo.EXPECT().
		SearchTrajets(gomock.Any(), "Paris", "Dakar", models.TransportModeAir,
			today, today.AddDate(0, 0, 15)).
		Return([]*models.Trajet{}, nil)

	_, err := uc.SearchTrajets(context.Background(), &models.TrajetSearchParams{
		From: "Paris",
		To:   "Dakar",
		Mode: models.TransportModeAir,
		Date: date,
	})

	require.NoError(t, err)
}

func TestSearchTrajets_ExplicitRange(t *testing.T) {
	ctrl, mockRepo, uc := newTestUC(t)
	defer ctrl.Finish()

	date := todayUTC().AddDate(0, 0, 30)

	mockRepo.EXPECT().
		SearchTrajets(gomock.Any(), "Lyon", "Abidjan", models.TransportModeSea,
			date.AddDate(0, 0, -3), date.AddDate(0, 0, 3)).
		Return([]*models.Trajet{{ID: uuid.New()}}, nil)

	results, err := uc.SearchTrajets(context.Background(), &models.TrajetSearchParams{
		From:      "Lyon",
		To:        "Abidjan",
		Mode:      models.TransportModeSea,
		Date:      date.Format(dateLayout),
		RangeDays: 3,
	})

	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchTrajets_UnknownMode(t *testing.T) {
	ctrl, _, uc := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.SearchTrajets(context.Background(), &models.TrajetSearchParams{
		From: "Paris",
		To:   "Dakar",
		Mode: "teleport",
		Date: "2030-01-01",
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreateTrajet(t *testing.T) {
	ctrl, mockRepo, uc := newTestUC(t)
	defer ctrl.Finish()

	departure := todayUTC().AddDate(0, 0, 7)
	req := &models.CreateTrajetRequest{
		DriverID:      uuid.New(),
		Origin:        "Paris",
		Destination:   "Dakar",
		TransportMode: models.TransportModeAir,
		DepartureDate: departure.Format(dateLayout),
	}

	mockRepo.EXPECT().CreateTrajet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *models.Trajet) (*models.Trajet, error) {
			return tr, nil
		})

	created, err := uc.CreateTrajet(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, departure, created.DepartureDate)
	assert.Equal(t, models.TransportModeAir, created.TransportMode)
}

func TestCreateTrajet_PastDeparture(t *testing.T) {
	ctrl, _, uc := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateTrajet(context.Background(), &models.CreateTrajetRequest{
		DriverID:      uuid.New(),
		Origin:        "Paris",
		Destination:   "Dakar",
		TransportMode: models.TransportModeRoad,
		DepartureDate: "2000-01-01",
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
