package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/swiftparcel/tracker/internal/db"
	"github.com/swiftparcel/tracker/internal/repository"
)

type RecipientRepo struct {
	db db.DB
}

func NewRecipientRepo(db db.DB) *RecipientRepo {
	return &RecipientRepo{db: db}
}

func (r *RecipientRepo) CreateTx(ctx context.Context, tx db.Tx, recipient *repository.Recipient) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO recipient (
            shipping_id, name, address, city, state, zip
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, recipient.ShippingID, recipient.Name, recipient.Address, recipient.City, recipient.State, recipient.Zip)
	return err
}

func (r *RecipientRepo) UpdateTx(ctx context.Context, tx db.Tx, recipient *repository.Recipient) error {
	_, err := tx.Exec(ctx, `
        UPDATE recipient
        SET name = $1, address = $2, city = $3, state = $4, zip = $5
        WHERE shipping_id = $6
    `, recipient.Name, recipient.Address, recipient.City, recipient.State, recipient.Zip, recipient.ShippingID)
	return err
}

func (r *RecipientRepo) GetByShippingID(ctx context.Context, shippingID int64) (*repository.Recipient, error) {
	var recipient repository.Recipient
	err := r.db.Get(ctx, &recipient, "SELECT * FROM recipient WHERE shipping_id = $1", shippingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &recipient, nil
}
