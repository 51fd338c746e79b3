package storage

import "time"

// Shipment status labels the data layer itself assigns. The full label
// set is free text chosen in the dashboard UI.
const (
	StatusInTransit = "In Transit"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

// Status recorded in the history when an IRS hold payment clears.
const holdClearedStatus = "IRS Hold Cleared - Payment Verified"

type Recipient struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

type ShipmentDetails struct {
	Type     string `json:"type"`
	Contents string `json:"contents"`
	Sender   string `json:"sender"`
}

type HistoryEntry struct {
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Status   string    `json:"status"`
}

type IrsHold struct {
	Amount           float64 `json:"amount"`
	PaymentStatus    string  `json:"payment_status"`
	VerificationCode string  `json:"verification_code,omitempty"`
}

// Shipping is the aggregate the tracking page and dashboard consume:
// the shipment row plus its owned recipient, details, history (newest
// first) and optional hold.
type Shipping struct {
	ID                int64           `json:"id"`
	TrackingNumber    string          `json:"tracking_number"`
	Status            string          `json:"status"`
	Location          string          `json:"location"`
	LastUpdate        time.Time       `json:"last_update"`
	EstimatedDelivery string          `json:"estimated_delivery"`
	Recipient         Recipient       `json:"recipient"`
	Details           ShipmentDetails `json:"details"`
	History           []HistoryEntry  `json:"history"`
	IrsHold           *IrsHold        `json:"irs_hold,omitempty"`
}

// ShippingFormData is the dashboard create/edit form payload. Presence
// of a hold is controlled by the explicit flag, never inferred from
// the amount.
type ShippingFormData struct {
	TrackingNumber    string          `json:"tracking_number"`
	Status            string          `json:"status"`
	Location          string          `json:"location"`
	EstimatedDelivery string          `json:"estimated_delivery"`
	Recipient         Recipient       `json:"recipient"`
	Details           ShipmentDetails `json:"details"`

	HasIrsHold          bool    `json:"has_irs_hold"`
	IrsHoldAmount       float64 `json:"irs_hold_amount"`
	IrsVerificationCode string  `json:"irs_verification_code"`
}

type HistoryEntryInput struct {
	Status   string
	Location string
	Date     time.Time
}
