package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/swiftparcel/tracker/internal/db"
	"github.com/swiftparcel/tracker/internal/repository"
)

type ShippingRepo struct {
	db db.DB
}

func NewShippingRepo(db db.DB) *ShippingRepo {
	return &ShippingRepo{db: db}
}

// CreateTx inserts the shipment row and returns its generated id.
func (r *ShippingRepo) CreateTx(ctx context.Context, tx db.Tx, shipping *repository.Shipping) (int64, error) {
	var id int64
	err := tx.Get(ctx, &id, `
        INSERT INTO shipping (
            tracking_number, status, location, last_update, estimated_delivery
        ) VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, shipping.TrackingNumber, shipping.Status, shipping.Location, shipping.LastUpdate, shipping.EstimatedDelivery)
	return id, err
}

func (r *ShippingRepo) GetByID(ctx context.Context, id int64) (*repository.Shipping, error) {
	var shipping repository.Shipping
	err := r.db.Get(ctx, &shipping, "SELECT * FROM shipping WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &shipping, nil
}

func (r *ShippingRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*repository.Shipping, error) {
	var shipping repository.Shipping
	err := r.db.Get(ctx, &shipping, "SELECT * FROM shipping WHERE tracking_number = $1", trackingNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &shipping, nil
}

func (r *ShippingRepo) GetAll(ctx context.Context) ([]*repository.Shipping, error) {
	var shippings []*repository.Shipping
	err := r.db.Select(ctx, &shippings, "SELECT * FROM shipping ORDER BY created_at DESC")
	return shippings, err
}

func (r *ShippingRepo) UpdateTx(ctx context.Context, tx db.Tx, shipping *repository.Shipping) error {
	_, err := tx.Exec(ctx, `
        UPDATE shipping
        SET
            tracking_number = $1,
            status = $2,
            location = $3,
            last_update = $4,
            estimated_delivery = $5,
            updated_at = now()
        WHERE id = $6
    `, shipping.TrackingNumber, shipping.Status, shipping.Location, shipping.LastUpdate, shipping.EstimatedDelivery, shipping.ID)
	return err
}

// SetStatusTx overwrites only the status label, used when a hold is
// cleared by payment verification.
func (r *ShippingRepo) SetStatusTx(ctx context.Context, tx db.Tx, id int64, status string) error {
	_, err := tx.Exec(ctx, `
        UPDATE shipping SET status = $1, updated_at = now() WHERE id = $2
    `, status, id)
	return err
}

// TouchTx mirrors a newly appended history entry onto the parent row:
// status, location and last_update move together.
func (r *ShippingRepo) TouchTx(ctx context.Context, tx db.Tx, id int64, status, location string, lastUpdate time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE shipping
        SET last_update = $1, status = $2, location = $3, updated_at = now()
        WHERE id = $4
    `, lastUpdate, status, location, id)
	return err
}

// Delete removes the shipment row; recipient, details, history and
// hold rows cascade at the schema level.
func (r *ShippingRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM shipping WHERE id = $1", id)
	return err
}
