package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/swiftparcel/tracker/internal/db"
	"github.com/swiftparcel/tracker/internal/repository"
)

type DetailsRepo struct {
	db db.DB
}

func NewDetailsRepo(db db.DB) *DetailsRepo {
	return &DetailsRepo{db: db}
}

func (r *DetailsRepo) CreateTx(ctx context.Context, tx db.Tx, details *repository.ShipmentDetails) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO shipment_details (
            shipping_id, type, contents, sender
        ) VALUES ($1, $2, $3, $4)
    `, details.ShippingID, details.Type, details.Contents, details.Sender)
	return err
}

func (r *DetailsRepo) UpdateTx(ctx context.Context, tx db.Tx, details *repository.ShipmentDetails) error {
	_, err := tx.Exec(ctx, `
        UPDATE shipment_details
        SET type = $1, contents = $2, sender = $3
        WHERE shipping_id = $4
    `, details.Type, details.Contents, details.Sender, details.ShippingID)
	return err
}

func (r *DetailsRepo) GetByShippingID(ctx context.Context, shippingID int64) (*repository.ShipmentDetails, error) {
	var details repository.ShipmentDetails
	err := r.db.Get(ctx, &details, "SELECT * FROM shipment_details WHERE shipping_id = $1", shippingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &details, nil
}
