package db

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS shipping (
		id BIGSERIAL PRIMARY KEY,
		tracking_number TEXT UNIQUE NOT NULL,
		status TEXT NOT NULL,
		location TEXT NOT NULL,
		last_update TIMESTAMPTZ NOT NULL,
		estimated_delivery TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS recipient (
		id BIGSERIAL PRIMARY KEY,
		shipping_id BIGINT UNIQUE NOT NULL REFERENCES shipping(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zip TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shipment_details (
		id BIGSERIAL PRIMARY KEY,
		shipping_id BIGINT UNIQUE NOT NULL REFERENCES shipping(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		contents TEXT NOT NULL,
		sender TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS history_entry (
		id BIGSERIAL PRIMARY KEY,
		shipping_id BIGINT NOT NULL REFERENCES shipping(id) ON DELETE CASCADE,
		date TIMESTAMPTZ NOT NULL,
		location TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS irs_hold (
		id BIGSERIAL PRIMARY KEY,
		shipping_id BIGINT UNIQUE NOT NULL REFERENCES shipping(id) ON DELETE CASCADE,
		amount NUMERIC(10, 2) NOT NULL,
		payment_status TEXT NOT NULL,
		verification_code TEXT
	)`,
}

// InitSchema creates the five shipment tables when they do not exist
// yet. Statements are idempotent so it runs on every startup.
func InitSchema(ctx context.Context, database DB) error {
	for _, stmt := range schemaStatements {
		if _, err := database.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
