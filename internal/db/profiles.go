package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// UpsertProfile creates a profile for uid or updates the existing one.
// Returns the stored row.
func (db *DB) UpsertProfile(ctx context.Context, uid, email, name, phone string) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (uid, email, name, phone)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (uid) DO UPDATE SET email = $2, name = $3, phone = $4, updated_at = NOW()
		 RETURNING id, uid, email, name, phone, created_at, updated_at`,
		uid, email, name, phone,
	).Scan(&p.ID, &p.UID, &p.Email, &p.Name, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return &p, nil
}

// GetProfile fetches a profile by external UID. Returns nil, nil when no
// profile exists.
func (db *DB) GetProfile(ctx context.Context, uid string) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, uid, email, name, phone, created_at, updated_at
		 FROM profiles WHERE uid = $1`,
		uid,
	).Scan(&p.ID, &p.UID, &p.Email, &p.Name, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// UpdateProfileName sets the display name on a profile, used when a parsed
// resume resolves a better name than the one provided at signup.
func (db *DB) UpdateProfileName(ctx context.Context, uid, name string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE profiles SET name = $1, updated_at = NOW() WHERE uid = $2`,
		name, uid,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile name: %w", err)
	}
	return nil
}
