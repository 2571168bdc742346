package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"menuboard/db"
	"menuboard/models"
	"menuboard/slug"
	"menuboard/theme"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CreateBusiness registers a restaurant for the owner. The slug is derived
// from the name and must be unique.
func CreateBusiness(ctx context.Context, ownerID, name, currency string) (*models.Business, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	s := slug.Make(name)
	if s == "" {
		return nil, fmt.Errorf("name must contain letters or digits")
	}
	if currency == "" {
		currency = models.BaseCurrency
	}

	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO businesses (owner_id, name, slug, currency, theme_preset, theme_overrides)
		VALUES ($1, $2, $3, $4, $5, '{}'::jsonb)
		RETURNING id`,
		ownerID, name, s, currency, theme.DefaultPreset,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("a business named %q already exists", name)
		}
		return nil, err
	}
	return &models.Business{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		Slug:        s,
		Currency:    currency,
		ThemePreset: theme.DefaultPreset,
	}, nil
}

func scanBusiness(row pgx.Row) (*models.Business, error) {
	var b models.Business
	var overrides []byte
	err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Slug, &b.Currency, &b.ThemePreset, &overrides)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(overrides) > 0 {
		var ov theme.Overrides
		if err := json.Unmarshal(overrides, &ov); err == nil {
			b.ThemeOverrides = &ov
		}
		// Corrupt overrides degrade to the bare preset; theme input never errors.
	}
	return &b, nil
}

const businessColumns = `id, owner_id, name, slug, currency, theme_preset, theme_overrides`

func GetBusinessBySlug(ctx context.Context, s string) (*models.Business, error) {
	return scanBusiness(db.Pool.QueryRow(ctx,
		`SELECT `+businessColumns+` FROM businesses WHERE slug = $1`, s))
}

func GetBusinessByID(ctx context.Context, id int64) (*models.Business, error) {
	return scanBusiness(db.Pool.QueryRow(ctx,
		`SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id))
}

// GetBusinessByOwner returns the owner's business, or ErrNotFound if they
// have not created one yet.
func GetBusinessByOwner(ctx context.Context, ownerID string) (*models.Business, error) {
	return scanBusiness(db.Pool.QueryRow(ctx,
		`SELECT `+businessColumns+` FROM businesses WHERE owner_id = $1 ORDER BY id LIMIT 1`, ownerID))
}

// UpdateBusiness renames the business and/or changes its display currency.
// Renaming re-derives the slug, keeping lookup and display in step.
func UpdateBusiness(ctx context.Context, ownerID string, businessID int64, name, currency string) (*models.Business, error) {
	b, err := GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	if name == "" {
		name = b.Name
	}
	if currency == "" {
		currency = b.Currency
	}
	s := slug.Make(name)
	if s == "" {
		return nil, fmt.Errorf("name must contain letters or digits")
	}
	_, err = db.Pool.Exec(ctx, `
		UPDATE businesses SET name = $1, slug = $2, currency = $3, updated_at = now()
		WHERE id = $4`,
		name, s, currency, businessID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("a business named %q already exists", name)
		}
		return nil, err
	}
	b.Name, b.Slug, b.Currency = name, s, currency
	return b, nil
}

// UpdateTheme stores the preset id and partial overrides. The preset id is
// stored as given; an unknown id degrades to the default at resolve time.
func UpdateTheme(ctx context.Context, ownerID string, businessID int64, preset string, overrides *theme.Overrides) error {
	b, err := GetBusinessByID(ctx, businessID)
	if err != nil {
		return err
	}
	if b.OwnerID != ownerID {
		return ErrNotOwner
	}
	if preset == "" {
		preset = theme.DefaultPreset
	}
	raw := []byte("{}")
	if overrides != nil {
		raw, err = json.Marshal(overrides)
		if err != nil {
			return fmt.Errorf("marshal overrides: %w", err)
		}
	}
	_, err = db.Pool.Exec(ctx, `
		UPDATE businesses SET theme_preset = $1, theme_overrides = $2::jsonb, updated_at = now()
		WHERE id = $3`,
		preset, raw, businessID,
	)
	return err
}

// businessOwner returns the owner id for the business, for ownership-chain
// checks further down the hierarchy.
func businessOwner(ctx context.Context, businessID int64) (string, error) {
	var owner string
	err := db.Pool.QueryRow(ctx, `SELECT owner_id FROM businesses WHERE id = $1`, businessID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return owner, nil
}
