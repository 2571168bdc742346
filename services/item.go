package services

import (
	"context"
	"fmt"

	"menuboard/db"
	"menuboard/models"
)

type ItemInput struct {
	Name        string
	Description string
	PriceCents  int64
	Tags        []string
}

func (in ItemInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}
	if in.PriceCents < 0 {
		return fmt.Errorf("price must be >= 0")
	}
	return nil
}

func AddItem(ctx context.Context, ownerID string, sectionID int64, in ItemInput) (*models.Item, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := requireSectionOwner(ctx, ownerID, sectionID); err != nil {
		return nil, err
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO items (section_id, name, description, price_cents, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		sectionID, in.Name, in.Description, in.PriceCents, in.Tags,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &models.Item{
		ID:          id,
		SectionID:   sectionID,
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Tags:        in.Tags,
	}, nil
}

func UpdateItem(ctx context.Context, ownerID string, itemID int64, in ItemInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	if err := requireItemOwner(ctx, ownerID, itemID); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `
		UPDATE items SET name = $1, description = $2, price_cents = $3, tags = $4, updated_at = now()
		WHERE id = $5`,
		in.Name, in.Description, in.PriceCents, in.Tags, itemID,
	)
	return err
}

func DeleteItem(ctx context.Context, ownerID string, itemID int64) error {
	if err := requireItemOwner(ctx, ownerID, itemID); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, itemID)
	return err
}

// SetItemImage points the item at an uploaded image key ("" clears it).
// Returns the previous key so the caller can drop the orphaned file.
func SetItemImage(ctx context.Context, ownerID string, itemID int64, imageKey string) (previous string, err error) {
	if err := requireItemOwner(ctx, ownerID, itemID); err != nil {
		return "", err
	}
	err = db.Pool.QueryRow(ctx,
		`SELECT COALESCE(image_key, '') FROM items WHERE id = $1`, itemID,
	).Scan(&previous)
	if err != nil {
		return "", mapNoRows(err)
	}
	_, err = db.Pool.Exec(ctx, `
		UPDATE items SET image_key = $1, updated_at = now() WHERE id = $2`,
		nullable(imageKey), itemID,
	)
	if err != nil {
		return "", err
	}
	return previous, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// requireItemOwner walks item -> section -> menu -> business.
func requireItemOwner(ctx context.Context, ownerID string, itemID int64) error {
	var owner string
	err := db.Pool.QueryRow(ctx, `
		SELECT b.owner_id FROM items i
		JOIN sections s ON s.id = i.section_id
		JOIN menus m ON m.id = s.menu_id
		JOIN businesses b ON b.id = m.business_id
		WHERE i.id = $1`,
		itemID,
	).Scan(&owner)
	if err != nil {
		return mapNoRows(err)
	}
	if owner != ownerID {
		return ErrNotOwner
	}
	return nil
}
