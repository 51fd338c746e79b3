package server

import (
	"time"
)

type AuditLogEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	Handler        string    `json:"handler"`
	Method         string    `json:"method"`
	Path           string    `json:"path"`
	StatusCode     int       `json:"status_code"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	ShippingID     string    `json:"shipping_id,omitempty"`
	Request        string    `json:"request,omitempty"`
	Response       string    `json:"response,omitempty"`
}
