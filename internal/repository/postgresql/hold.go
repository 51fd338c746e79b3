package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/swiftparcel/tracker/internal/db"
	"github.com/swiftparcel/tracker/internal/repository"
)

type HoldRepo struct {
	db db.DB
}

func NewHoldRepo(db db.DB) *HoldRepo {
	return &HoldRepo{db: db}
}

func (r *HoldRepo) CreateTx(ctx context.Context, tx db.Tx, hold *repository.IrsHold) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO irs_hold (
            shipping_id, amount, payment_status, verification_code
        ) VALUES ($1, $2, $3, $4)
    `, hold.ShippingID, hold.Amount, hold.PaymentStatus, hold.VerificationCode)
	return err
}

// UpdateTx overwrites amount and verification code; payment status is
// deliberately left untouched so an edit cannot un-pay a hold.
func (r *HoldRepo) UpdateTx(ctx context.Context, tx db.Tx, shippingID int64, amount float64, verificationCode *string) error {
	_, err := tx.Exec(ctx, `
        UPDATE irs_hold
        SET amount = $1, verification_code = $2
        WHERE shipping_id = $3
    `, amount, verificationCode, shippingID)
	return err
}

func (r *HoldRepo) DeleteTx(ctx context.Context, tx db.Tx, shippingID int64) error {
	_, err := tx.Exec(ctx, "DELETE FROM irs_hold WHERE shipping_id = $1", shippingID)
	return err
}

func (r *HoldRepo) MarkPaidTx(ctx context.Context, tx db.Tx, id int64) error {
	_, err := tx.Exec(ctx, "UPDATE irs_hold SET payment_status = $1 WHERE id = $2", "Paid", id)
	return err
}

func (r *HoldRepo) GetByShippingID(ctx context.Context, shippingID int64) (*repository.IrsHold, error) {
	var hold repository.IrsHold
	err := r.db.Get(ctx, &hold, "SELECT * FROM irs_hold WHERE shipping_id = $1", shippingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &hold, nil
}

func (r *HoldRepo) GetByShippingIDTx(ctx context.Context, tx db.Tx, shippingID int64) (*repository.IrsHold, error) {
	var hold repository.IrsHold
	err := tx.Get(ctx, &hold, "SELECT * FROM irs_hold WHERE shipping_id = $1 FOR UPDATE", shippingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &hold, nil
}
