package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/swiftparcel/tracker/internal/db/mocks"
	"github.com/swiftparcel/tracker/internal/repository"
	"github.com/swiftparcel/tracker/internal/repository/postgresql"
)

func TestShippingRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		shipping := &repository.Shipping{
			TrackingNumber:    "SP-240601-001",
			Status:            "Label Created",
			Location:          "Newark, NJ",
			LastUpdate:        now,
			EstimatedDelivery: "June 8, 2025",
		}

		mockTx.EXPECT().Get(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(shipping.TrackingNumber),
			gomock.Eq(shipping.Status),
			gomock.Eq(shipping.Location),
			gomock.Eq(shipping.LastUpdate),
			gomock.Eq(shipping.EstimatedDelivery),
		).DoAndReturn(func(_ context.Context, dest *int64, _ string, _ ...any) error {
			*dest = 42
			return nil
		})

		id, err := repo.CreateTx(ctx, mockTx, shipping)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		_, err := repo.CreateTx(ctx, mockTx, &repository.Shipping{TrackingNumber: "SP-240601-001"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestShippingRepo_GetByTrackingNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("shipping found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		testShipping := &repository.Shipping{
			ID:             7,
			TrackingNumber: "SP-240601-001",
			Status:         "In Transit",
			Location:       "Memphis, TN",
			LastUpdate:     now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(testShipping.TrackingNumber)).
			DoAndReturn(func(_ context.Context, dest *repository.Shipping, _ string, _ ...any) error {
				*dest = *testShipping
				return nil
			})

		shipping, err := repo.GetByTrackingNumber(ctx, testShipping.TrackingNumber)
		assert.NoError(t, err)
		assert.Equal(t, testShipping, shipping)
	})

	t.Run("shipping not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		shipping, err := repo.GetByTrackingNumber(ctx, "SP-UNKNOWN")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, shipping)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		shipping, err := repo.GetByTrackingNumber(ctx, "SP-240601-001")
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, shipping)
	})
}

func TestShippingRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("shipping not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(99))).
			Return(pgx.ErrNoRows)

		shipping, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, shipping)
	})
}

func TestShippingRepo_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		expected := []*repository.Shipping{
			{ID: 2, TrackingNumber: "SP-240602-001"},
			{ID: 1, TrackingNumber: "SP-240601-001"},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Shipping, _ string, _ ...any) error {
				*dest = expected
				return nil
			})

		shippings, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, shippings)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		_, err := repo.GetAll(ctx)
		assert.Equal(t, expectedErr, err)
	})
}

func TestShippingRepo_UpdateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		now := time.Date(2025, 6, 3, 9, 30, 0, 0, time.UTC)
		shipping := &repository.Shipping{
			ID:                7,
			TrackingNumber:    "SP-240601-001",
			Status:            "Out for Delivery",
			Location:          "Brooklyn, NY",
			LastUpdate:        now,
			EstimatedDelivery: "June 8, 2025",
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(shipping.TrackingNumber),
			gomock.Eq(shipping.Status),
			gomock.Eq(shipping.Location),
			gomock.Eq(shipping.LastUpdate),
			gomock.Eq(shipping.EstimatedDelivery),
			gomock.Eq(shipping.ID),
		).Return(nil, nil)

		err := repo.UpdateTx(ctx, mockTx, shipping)
		assert.NoError(t, err)
	})
}

func TestShippingRepo_TouchTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		now := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(now),
			gomock.Eq("Delivered"),
			gomock.Eq("Queens, NY"),
			gomock.Eq(int64(7)),
		).Return(nil, nil)

		err := repo.TouchTx(ctx, mockTx, 7, "Delivered", "Queens, NY", now)
		assert.NoError(t, err)
	})
}

func TestShippingRepo_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(7))).
			Return(nil, nil)

		err := repo.Delete(ctx, 7)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewShippingRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Delete(ctx, 7)
		assert.Equal(t, expectedErr, err)
	})
}
