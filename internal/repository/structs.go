package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Shipping struct {
	ID                int64     `db:"id"`
	TrackingNumber    string    `db:"tracking_number"`
	Status            string    `db:"status"`
	Location          string    `db:"location"`
	LastUpdate        time.Time `db:"last_update"`
	EstimatedDelivery string    `db:"estimated_delivery"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type Recipient struct {
	ID         int64  `db:"id"`
	ShippingID int64  `db:"shipping_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
	City       string `db:"city"`
	State      string `db:"state"`
	Zip        string `db:"zip"`
}

type ShipmentDetails struct {
	ID         int64  `db:"id"`
	ShippingID int64  `db:"shipping_id"`
	Type       string `db:"type"`
	Contents   string `db:"contents"`
	Sender     string `db:"sender"`
}

type HistoryEntry struct {
	ID         int64     `db:"id"`
	ShippingID int64     `db:"shipping_id"`
	Date       time.Time `db:"date"`
	Location   string    `db:"location"`
	Status     string    `db:"status"`
}

type IrsHold struct {
	ID               int64   `db:"id"`
	ShippingID       int64   `db:"shipping_id"`
	Amount           float64 `db:"amount"`
	PaymentStatus    string  `db:"payment_status"`
	VerificationCode *string `db:"verification_code"`
}
