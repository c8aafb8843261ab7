// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LinkStripeCustomer records the billing customer for a profile after checkout.
func LinkStripeCustomer(ctx context.Context, conn *sql.DB, profileID, customerID, status string) error {
	res, err := conn.ExecContext(ctx, `
		UPDATE profile
		SET stripe_customer_id = $1, subscription_status = $2
		WHERE id = $3
	`, customerID, status, profileID)
	if err != nil {
		return fmt.Errorf("failed to link stripe customer: %w", err)
	}
	return expectRow(res)
}

// UpdateSubscriptionStatus sets the subscription status for a billing customer.
func UpdateSubscriptionStatus(ctx context.Context, conn *sql.DB, customerID, status string) error {
	res, err := conn.ExecContext(ctx, `
		UPDATE profile
		SET subscription_status = $1
		WHERE stripe_customer_id = $2
	`, status, customerID)
	if err != nil {
		return fmt.Errorf("failed to update subscription status: %w", err)
	}
	return expectRow(res)
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ContactMessage is a relayed contact form submission as stored.
type ContactMessage struct {
	ID          string
	ProfileID   string
	SenderName  string
	SenderEmail string
	Body        string
	ProviderID  string
	IPHash      string
}

// InsertContactMessage stores a contact form submission that was handed to the
// email provider.
func InsertContactMessage(ctx context.Context, conn *sql.DB, m ContactMessage) error {
	_, err := conn.ExecContext(ctx, `
		INSERT INTO contact_message (id, profile_id, sender_name, sender_email, body, provider_id, ip_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, m.ID, m.ProfileID, m.SenderName, m.SenderEmail, m.Body, m.ProviderID, m.IPHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// AccountStats are the counters shown on the dashboard overview.
type AccountStats struct {
	ArtworkCount   int
	SoldCount      int
	InventoryCents int64
	MessageCount   int
	LastMessageAt  time.Time
}

// Stats aggregates artwork and message counters for a profile.
func Stats(ctx context.Context, conn *sql.DB, profileID string) (AccountStats, error) {
	var s AccountStats
	err := conn.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN sold THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN sold THEN 0 ELSE price_cents END), 0)
		FROM artwork
		WHERE profile_id = $1
	`, profileID).Scan(&s.ArtworkCount, &s.SoldCount, &s.InventoryCents)
	if err != nil {
		return AccountStats{}, fmt.Errorf("failed to query artwork stats: %w", err)
	}

	err = conn.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM contact_message WHERE profile_id = $1
	`, profileID).Scan(&s.MessageCount)
	if err != nil {
		return AccountStats{}, fmt.Errorf("failed to count messages: %w", err)
	}
	if s.MessageCount == 0 {
		return s, nil
	}

	err = conn.QueryRowContext(ctx, `
		SELECT created_at FROM contact_message
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, profileID).Scan(&s.LastMessageAt)
	if err != nil {
		return AccountStats{}, fmt.Errorf("failed to query last message: %w", err)
	}
	return s, nil
}
