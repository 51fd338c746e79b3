package storage

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/swiftparcel/tracker/internal/db"
	"github.com/swiftparcel/tracker/internal/metrics"
	"github.com/swiftparcel/tracker/internal/repository"
)

// Opaque domain errors returned to callers. The underlying database
// error is logged server-side and never leaves this package.
var (
	ErrFetchShipping   = errors.New("failed to fetch shipping")
	ErrFetchShippings  = errors.New("failed to fetch shippings")
	ErrCreateShipping  = errors.New("failed to create shipping")
	ErrUpdateShipping  = errors.New("failed to update shipping")
	ErrDeleteShipping  = errors.New("failed to delete shipping")
	ErrVerifyPayment   = errors.New("failed to verify IRS payment")
	ErrAddHistoryEntry = errors.New("failed to add history entry")
)

// Bound on concurrent per-shipment assembly in GetAllShippings.
const maxAssemblyWorkers = 8

type ShippingRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, shipping *repository.Shipping) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.Shipping, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*repository.Shipping, error)
	GetAll(ctx context.Context) ([]*repository.Shipping, error)
	UpdateTx(ctx context.Context, tx db.Tx, shipping *repository.Shipping) error
	SetStatusTx(ctx context.Context, tx db.Tx, id int64, status string) error
	TouchTx(ctx context.Context, tx db.Tx, id int64, status, location string, lastUpdate time.Time) error
	Delete(ctx context.Context, id int64) error
}

type RecipientRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, recipient *repository.Recipient) error
	UpdateTx(ctx context.Context, tx db.Tx, recipient *repository.Recipient) error
	GetByShippingID(ctx context.Context, shippingID int64) (*repository.Recipient, error)
}

type DetailsRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, details *repository.ShipmentDetails) error
	UpdateTx(ctx context.Context, tx db.Tx, details *repository.ShipmentDetails) error
	GetByShippingID(ctx context.Context, shippingID int64) (*repository.ShipmentDetails, error)
}

type HistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error
	GetByShippingID(ctx context.Context, shippingID int64) ([]*repository.HistoryEntry, error)
}

type HoldRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, hold *repository.IrsHold) error
	UpdateTx(ctx context.Context, tx db.Tx, shippingID int64, amount float64, verificationCode *string) error
	DeleteTx(ctx context.Context, tx db.Tx, shippingID int64) error
	MarkPaidTx(ctx context.Context, tx db.Tx, id int64) error
	GetByShippingID(ctx context.Context, shippingID int64) (*repository.IrsHold, error)
	GetByShippingIDTx(ctx context.Context, tx db.Tx, shippingID int64) (*repository.IrsHold, error)
}

// Revalidator marks rendered view paths stale after successful writes.
type Revalidator interface {
	TrackingPage(ctx context.Context, trackingNumber string)
	Dashboard(ctx context.Context)
}

// TrackingStorage composes the five shipment tables into one aggregate
// and runs every write as a single transaction. All operations are
// wrapped in the transient-failure retry: each is a pure read or a
// self-contained transaction, so a retried attempt starts clean.
type TrackingStorage struct {
	db          db.DB
	shippings   ShippingRepository
	recipients  RecipientRepository
	details     DetailsRepository
	history     HistoryRepository
	holds       HoldRepository
	revalidator Revalidator
	logger      *zap.Logger
}

func NewTrackingStorage(
	database db.DB,
	shippings ShippingRepository,
	recipients RecipientRepository,
	details DetailsRepository,
	history HistoryRepository,
	holds HoldRepository,
	revalidator Revalidator,
	logger *zap.Logger,
) *TrackingStorage {
	return &TrackingStorage{
		db:          database,
		shippings:   shippings,
		recipients:  recipients,
		details:     details,
		history:     history,
		holds:       holds,
		revalidator: revalidator,
		logger:      logger,
	}
}

// GetShippingByTrackingNumber returns the assembled aggregate, or nil
// when no shipment carries the tracking number. A lookup miss is not
// an error.
func (s *TrackingStorage) GetShippingByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipping, error) {
	var result *Shipping

	err := db.WithRetry(ctx, func(ctx context.Context) error {
		result = nil

		row, err := s.shippings.GetByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil
			}
			return err
		}

		assembled, err := s.assemble(ctx, row)
		if err != nil {
			return err
		}
		result = assembled
		return nil
	})
	if err != nil {
		s.logger.Error("database error",
			zap.String("tracking_number", trackingNumber), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("get_shipping").Inc()
		return nil, ErrFetchShipping
	}

	return result, nil
}

// GetAllShippings assembles every shipment, newest first. Assembly
// fans out across shipments; the four lookups within one shipment stay
// sequential and run outside any transaction, as on the read path.
func (s *TrackingStorage) GetAllShippings(ctx context.Context) ([]Shipping, error) {
	var result []Shipping

	err := db.WithRetry(ctx, func(ctx context.Context) error {
		rows, err := s.shippings.GetAll(ctx)
		if err != nil {
			return err
		}

		out := make([]Shipping, len(rows))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxAssemblyWorkers)
		for i, row := range rows {
			i, row := i, row
			g.Go(func() error {
				assembled, err := s.assemble(gctx, row)
				if err != nil {
					return err
				}
				out[i] = *assembled
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		result = out
		return nil
	})
	if err != nil {
		s.logger.Error("database error", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("get_all_shippings").Inc()
		return nil, ErrFetchShippings
	}

	return result, nil
}

// CreateShipping inserts the shipment, its recipient and details rows,
// the initial history entry and, when flagged, a Pending hold — all in
// one transaction.
func (s *TrackingStorage) CreateShipping(ctx context.Context, data ShippingFormData) error {
	err := db.WithRetry(ctx, func(ctx context.Context) error {
		return db.InTransaction(ctx, s.db, func(tx db.Tx) error {
			now := time.Now().UTC()

			id, err := s.shippings.CreateTx(ctx, tx, &repository.Shipping{
				TrackingNumber:    data.TrackingNumber,
				Status:            data.Status,
				Location:          data.Location,
				LastUpdate:        now,
				EstimatedDelivery: data.EstimatedDelivery,
			})
			if err != nil {
				return err
			}

			if err := s.recipients.CreateTx(ctx, tx, &repository.Recipient{
				ShippingID: id,
				Name:       data.Recipient.Name,
				Address:    data.Recipient.Address,
				City:       data.Recipient.City,
				State:      data.Recipient.State,
				Zip:        data.Recipient.Zip,
			}); err != nil {
				return err
			}

			if err := s.details.CreateTx(ctx, tx, &repository.ShipmentDetails{
				ShippingID: id,
				Type:       data.Details.Type,
				Contents:   data.Details.Contents,
				Sender:     data.Details.Sender,
			}); err != nil {
				return err
			}

			if err := s.history.CreateTx(ctx, tx, &repository.HistoryEntry{
				ShippingID: id,
				Date:       now,
				Location:   data.Location,
				Status:     data.Status,
			}); err != nil {
				return err
			}

			if data.HasIrsHold {
				if err := s.holds.CreateTx(ctx, tx, &repository.IrsHold{
					ShippingID:       id,
					Amount:           data.IrsHoldAmount,
					PaymentStatus:    PaymentStatusPending,
					VerificationCode: nullableCode(data.IrsVerificationCode),
				}); err != nil {
					return err
				}
			}

			return nil
		})
	})
	if err != nil {
		s.logger.Error("database error",
			zap.String("tracking_number", data.TrackingNumber), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("create_shipping").Inc()
		return ErrCreateShipping
	}

	metrics.ShipmentsCreatedTotal.Inc()
	s.revalidator.Dashboard(ctx)
	return nil
}

// UpdateShipping rewrites the shipment, recipient and details rows and
// reconciles the hold against the flag: flagged and present updates
// amount/code, flagged and absent inserts a Pending hold, unflagged
// and present deletes it.
func (s *TrackingStorage) UpdateShipping(ctx context.Context, id int64, data ShippingFormData) error {
	err := db.WithRetry(ctx, func(ctx context.Context) error {
		return db.InTransaction(ctx, s.db, func(tx db.Tx) error {
			now := time.Now().UTC()

			if err := s.shippings.UpdateTx(ctx, tx, &repository.Shipping{
				ID:                id,
				TrackingNumber:    data.TrackingNumber,
				Status:            data.Status,
				Location:          data.Location,
				LastUpdate:        now,
				EstimatedDelivery: data.EstimatedDelivery,
			}); err != nil {
				return err
			}

			if err := s.recipients.UpdateTx(ctx, tx, &repository.Recipient{
				ShippingID: id,
				Name:       data.Recipient.Name,
				Address:    data.Recipient.Address,
				City:       data.Recipient.City,
				State:      data.Recipient.State,
				Zip:        data.Recipient.Zip,
			}); err != nil {
				return err
			}

			if err := s.details.UpdateTx(ctx, tx, &repository.ShipmentDetails{
				ShippingID: id,
				Type:       data.Details.Type,
				Contents:   data.Details.Contents,
				Sender:     data.Details.Sender,
			}); err != nil {
				return err
			}

			_, err := s.holds.GetByShippingIDTx(ctx, tx, id)
			if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
				return err
			}
			holdExists := err == nil

			switch {
			case data.HasIrsHold && holdExists:
				return s.holds.UpdateTx(ctx, tx, id, data.IrsHoldAmount, nullableCode(data.IrsVerificationCode))
			case data.HasIrsHold:
				return s.holds.CreateTx(ctx, tx, &repository.IrsHold{
					ShippingID:       id,
					Amount:           data.IrsHoldAmount,
					PaymentStatus:    PaymentStatusPending,
					VerificationCode: nullableCode(data.IrsVerificationCode),
				})
			case holdExists:
				return s.holds.DeleteTx(ctx, tx, id)
			}
			return nil
		})
	})
	if err != nil {
		s.logger.Error("database error", zap.Int64("shipping_id", id), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("update_shipping").Inc()
		return ErrUpdateShipping
	}

	metrics.ShipmentsUpdatedTotal.Inc()
	s.revalidator.TrackingPage(ctx, data.TrackingNumber)
	s.revalidator.Dashboard(ctx)
	return nil
}

// DeleteShipping removes the shipment; owned rows cascade at the
// schema level. The tracking number is fetched first so the right
// public page can be invalidated.
func (s *TrackingStorage) DeleteShipping(ctx context.Context, id int64) error {
	var trackingNumber string

	err := db.WithRetry(ctx, func(ctx context.Context) error {
		trackingNumber = ""

		row, err := s.shippings.GetByID(ctx, id)
		if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
			return err
		}
		if row != nil {
			trackingNumber = row.TrackingNumber
		}

		return s.shippings.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("database error", zap.Int64("shipping_id", id), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("delete_shipping").Inc()
		return ErrDeleteShipping
	}

	metrics.ShipmentsDeletedTotal.Inc()
	if trackingNumber != "" {
		s.revalidator.TrackingPage(ctx, trackingNumber)
	}
	s.revalidator.Dashboard(ctx)
	return nil
}

// VerifyIrsPayment checks the submitted code against the hold's stored
// verification code. A missing shipment, missing hold or mismatched
// code all return false without error. On a match one transaction
// marks the hold Paid, moves the shipment to In Transit and appends a
// cleared-hold history entry at the current location.
func (s *TrackingStorage) VerifyIrsPayment(ctx context.Context, trackingNumber, verificationCode string) (bool, error) {
	var verified bool

	err := db.WithRetry(ctx, func(ctx context.Context) error {
		verified = false

		row, err := s.shippings.GetByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil
			}
			return err
		}

		hold, err := s.holds.GetByShippingID(ctx, row.ID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil
			}
			return err
		}

		if hold.VerificationCode == nil || *hold.VerificationCode != verificationCode {
			return nil
		}

		if err := db.InTransaction(ctx, s.db, func(tx db.Tx) error {
			if err := s.holds.MarkPaidTx(ctx, tx, hold.ID); err != nil {
				return err
			}
			if err := s.shippings.SetStatusTx(ctx, tx, row.ID, StatusInTransit); err != nil {
				return err
			}
			return s.history.CreateTx(ctx, tx, &repository.HistoryEntry{
				ShippingID: row.ID,
				Date:       time.Now().UTC(),
				Location:   row.Location,
				Status:     holdClearedStatus,
			})
		}); err != nil {
			return err
		}

		verified = true
		return nil
	})
	if err != nil {
		s.logger.Error("database error",
			zap.String("tracking_number", trackingNumber), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("verify_payment").Inc()
		return false, ErrVerifyPayment
	}

	if verified {
		metrics.PaymentsVerifiedTotal.Inc()
		s.revalidator.TrackingPage(ctx, trackingNumber)
	}
	return verified, nil
}

// AddHistoryEntry appends one history entry and, in the same
// transaction, overwrites the parent shipment's status, location and
// last_update to match it.
func (s *TrackingStorage) AddHistoryEntry(ctx context.Context, shippingID int64, entry HistoryEntryInput) error {
	err := db.WithRetry(ctx, func(ctx context.Context) error {
		return db.InTransaction(ctx, s.db, func(tx db.Tx) error {
			if err := s.history.CreateTx(ctx, tx, &repository.HistoryEntry{
				ShippingID: shippingID,
				Date:       entry.Date.UTC(),
				Location:   entry.Location,
				Status:     entry.Status,
			}); err != nil {
				return err
			}
			return s.shippings.TouchTx(ctx, tx, shippingID, entry.Status, entry.Location, time.Now().UTC())
		})
	})
	if err != nil {
		s.logger.Error("database error", zap.Int64("shipping_id", shippingID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("add_history_entry").Inc()
		return ErrAddHistoryEntry
	}

	metrics.HistoryEntriesAddedTotal.Inc()
	if row, err := s.shippings.GetByID(ctx, shippingID); err == nil {
		s.revalidator.TrackingPage(ctx, row.TrackingNumber)
	}
	s.revalidator.Dashboard(ctx)
	return nil
}

// assemble joins the owned rows onto one shipment row. Recipient and
// details are written transactionally with the shipment, so a missing
// row means outside interference; the read still succeeds with
// zero-value fields, matching the tracking page's expectations.
func (s *TrackingStorage) assemble(ctx context.Context, row *repository.Shipping) (*Shipping, error) {
	out := &Shipping{
		ID:                row.ID,
		TrackingNumber:    row.TrackingNumber,
		Status:            row.Status,
		Location:          row.Location,
		LastUpdate:        row.LastUpdate.UTC(),
		EstimatedDelivery: row.EstimatedDelivery,
	}

	recipient, err := s.recipients.GetByShippingID(ctx, row.ID)
	switch {
	case err == nil:
		out.Recipient = Recipient{
			Name:    recipient.Name,
			Address: recipient.Address,
			City:    recipient.City,
			State:   recipient.State,
			Zip:     recipient.Zip,
		}
	case errors.Is(err, repository.ErrObjectNotFound):
		s.logger.Warn("shipping has no recipient row", zap.Int64("shipping_id", row.ID))
	default:
		return nil, err
	}

	details, err := s.details.GetByShippingID(ctx, row.ID)
	switch {
	case err == nil:
		out.Details = ShipmentDetails{
			Type:     details.Type,
			Contents: details.Contents,
			Sender:   details.Sender,
		}
	case errors.Is(err, repository.ErrObjectNotFound):
		s.logger.Warn("shipping has no details row", zap.Int64("shipping_id", row.ID))
	default:
		return nil, err
	}

	entries, err := s.history.GetByShippingID(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	out.History = make([]HistoryEntry, len(entries))
	for i, e := range entries {
		out.History[i] = HistoryEntry{
			Date:     e.Date.UTC(),
			Location: e.Location,
			Status:   e.Status,
		}
	}

	hold, err := s.holds.GetByShippingID(ctx, row.ID)
	switch {
	case err == nil:
		out.IrsHold = &IrsHold{
			Amount:        hold.Amount,
			PaymentStatus: hold.PaymentStatus,
		}
		if hold.VerificationCode != nil {
			out.IrsHold.VerificationCode = *hold.VerificationCode
		}
	case errors.Is(err, repository.ErrObjectNotFound):
	default:
		return nil, err
	}

	return out, nil
}

func nullableCode(code string) *string {
	if code == "" {
		return nil
	}
	return &code
}
