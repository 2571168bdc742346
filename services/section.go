package services

import (
	"context"
	"errors"
	"fmt"

	"menuboard/db"
	"menuboard/models"

	"github.com/jackc/pgx/v5"
)

func AddSection(ctx context.Context, ownerID string, menuID int64, title string) (*models.Section, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if err := requireMenuOwner(ctx, ownerID, menuID); err != nil {
		return nil, err
	}
	var id int64
	var pos int
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO sections (menu_id, title, position)
		VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM sections WHERE menu_id = $1))
		RETURNING id, position`,
		menuID, title,
	).Scan(&id, &pos)
	if err != nil {
		return nil, err
	}
	return &models.Section{ID: id, MenuID: menuID, Title: title, Position: pos}, nil
}

func RenameSection(ctx context.Context, ownerID string, sectionID int64, title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if err := requireSectionOwner(ctx, ownerID, sectionID); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `UPDATE sections SET title = $1, updated_at = now() WHERE id = $2`, title, sectionID)
	return err
}

// MoveSection sets the section's position among its siblings.
func MoveSection(ctx context.Context, ownerID string, sectionID int64, position int) error {
	if err := requireSectionOwner(ctx, ownerID, sectionID); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `UPDATE sections SET position = $1, updated_at = now() WHERE id = $2`, position, sectionID)
	return err
}

// DeleteSection removes the section and, by schema cascade, all its items.
func DeleteSection(ctx context.Context, ownerID string, sectionID int64) error {
	if err := requireSectionOwner(ctx, ownerID, sectionID); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `DELETE FROM sections WHERE id = $1`, sectionID)
	return err
}

// requireSectionOwner walks section -> menu -> business and verifies ownership.
func requireSectionOwner(ctx context.Context, ownerID string, sectionID int64) error {
	var owner string
	err := db.Pool.QueryRow(ctx, `
		SELECT b.owner_id FROM sections s
		JOIN menus m ON m.id = s.menu_id
		JOIN businesses b ON b.id = m.business_id
		WHERE s.id = $1`,
		sectionID,
	).Scan(&owner)
	if err != nil {
		return mapNoRows(err)
	}
	if owner != ownerID {
		return ErrNotOwner
	}
	return nil
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
