package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/swiftparcel/tracker/internal/db/mocks"
	"github.com/swiftparcel/tracker/internal/repository"
	"github.com/swiftparcel/tracker/internal/repository/postgresql"
)

func TestHistoryRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		entry := &repository.HistoryEntry{
			ShippingID: 7,
			Date:       time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
			Location:   "Memphis, TN",
			Status:     "In Transit",
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(entry.ShippingID),
			gomock.Eq(entry.Date),
			gomock.Eq(entry.Location),
			gomock.Eq(entry.Status),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, entry)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.CreateTx(ctx, mockTx, &repository.HistoryEntry{ShippingID: 7})
		assert.Equal(t, expectedErr, err)
	})
}

func TestHistoryRepo_GetByShippingID(t *testing.T) {
	ctx := context.Background()

	t.Run("entries returned newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		expected := []*repository.HistoryEntry{
			{ID: 2, ShippingID: 7, Date: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC), Status: "In Transit"},
			{ID: 1, ShippingID: 7, Date: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), Status: "Label Created"},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(7))).
			DoAndReturn(func(_ context.Context, dest *[]*repository.HistoryEntry, _ string, _ ...any) error {
				*dest = expected
				return nil
			})

		entries, err := repo.GetByShippingID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, expected, entries)
	})

	t.Run("no entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		entries, err := repo.GetByShippingID(ctx, 7)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		_, err := repo.GetByShippingID(ctx, 7)
		assert.Equal(t, expectedErr, err)
	})
}
