package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/swiftparcel/tracker/internal/db/mocks"
	"github.com/swiftparcel/tracker/internal/repository"
	"github.com/swiftparcel/tracker/internal/repository/postgresql"
)

func TestHoldRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success with verification code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewHoldRepo(mockDB)

		code := "IRS-4821"
		hold := &repository.IrsHold{
			ShippingID:       7,
			Amount:           250.00,
			PaymentStatus:    "Pending",
			VerificationCode: &code,
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(hold.ShippingID),
			gomock.Eq(hold.Amount),
			gomock.Eq(hold.PaymentStatus),
			gomock.Eq(hold.VerificationCode),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, hold)
		assert.NoError(t, err)
	})

	t.Run("success without verification code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewHoldRepo(mockDB)

		hold := &repository.IrsHold{
			ShippingID:    7,
			Amount:        100.00,
			PaymentStatus: "Pending",
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(hold.ShippingID),
			gomock.Eq(hold.Amount),
			gomock.Eq(hold.PaymentStatus),
			gomock.Nil(),
		).Return(nil, nil)

		err := repo.CreateTx(ctx, mockTx, hold)
		assert.NoError(t, err)
	})
}

func TestHoldRepo_UpdateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewHoldRepo(mockDB)

		code := "IRS-9999"
		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(300.50),
			gomock.Eq(&code),
			gomock.Eq(int64(7)),
		).Return(nil, nil)

		err := repo.UpdateTx(ctx, mockTx, 7, 300.50, &code)
		assert.NoError(t, err)
	})
}

func TestHoldRepo_MarkPaidTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewHoldRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq("Paid"), gomock.Eq(int64(3))).
			Return(nil, nil)

		err := repo.MarkPaidTx(ctx, mockTx, 3)
		assert.NoError(t, err)
	})
}

func TestHoldRepo_GetByShippingID(t *testing.T) {
	ctx := context.Background()

	t.Run("hold found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewHoldRepo(mockDB)

		code := "IRS-4821"
		testHold := &repository.IrsHold{
			ID:               3,
			ShippingID:       7,
			Amount:           250.00,
			PaymentStatus:    "Pending",
			VerificationCode: &code,
		}

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(7))).
			DoAndReturn(func(_ context.Context, dest *repository.IrsHold, _ string, _ ...any) error {
				*dest = *testHold
				return nil
			})

		hold, err := repo.GetByShippingID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, testHold, hold)
	})

	t.Run("hold not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewHoldRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		hold, err := repo.GetByShippingID(ctx, 7)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, hold)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewHoldRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		hold, err := repo.GetByShippingID(ctx, 7)
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, hold)
	})
}

func TestHoldRepo_GetByShippingIDTx(t *testing.T) {
	ctx := context.Background()

	t.Run("hold not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewHoldRepo(mockDB)

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(7))).
			Return(pgx.ErrNoRows)

		hold, err := repo.GetByShippingIDTx(ctx, mockTx, 7)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, hold)
	})
}

func TestHoldRepo_DeleteTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewHoldRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(int64(7))).
			Return(nil, nil)

		err := repo.DeleteTx(ctx, mockTx, 7)
		assert.NoError(t, err)
	})
}
