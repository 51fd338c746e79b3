package postgresql

import (
	"context"

	"github.com/swiftparcel/tracker/internal/db"
	"github.com/swiftparcel/tracker/internal/repository"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO history_entry (
            shipping_id, date, location, status
        ) VALUES ($1, $2, $3, $4)
    `, entry.ShippingID, entry.Date, entry.Location, entry.Status)
	return err
}

// GetByShippingID returns the shipment's history newest first, the
// order the tracking page displays it in.
func (r *HistoryRepo) GetByShippingID(ctx context.Context, shippingID int64) ([]*repository.HistoryEntry, error) {
	var entries []*repository.HistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM history_entry
        WHERE shipping_id = $1
        ORDER BY date DESC
    `, shippingID)
	return entries, err
}
