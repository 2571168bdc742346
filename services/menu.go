package services

import (
	"context"
	"fmt"

	"menuboard/db"
	"menuboard/models"
)

func CreateMenu(ctx context.Context, ownerID string, businessID int64, name string) (*models.Menu, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	owner, err := businessOwner(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if owner != ownerID {
		return nil, ErrNotOwner
	}
	var id int64
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO menus (business_id, name) VALUES ($1, $2)
		RETURNING id`,
		businessID, name,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &models.Menu{ID: id, BusinessID: businessID, Name: name}, nil
}

func ListMenus(ctx context.Context, ownerID string, businessID int64) ([]models.Menu, error) {
	owner, err := businessOwner(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if owner != ownerID {
		return nil, ErrNotOwner
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT id, business_id, name FROM menus
		WHERE business_id = $1
		ORDER BY id`,
		businessID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []models.Menu
	for rows.Next() {
		var m models.Menu
		if err := rows.Scan(&m.ID, &m.BusinessID, &m.Name); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

func RenameMenu(ctx context.Context, ownerID string, menuID int64, name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if err := requireMenuOwner(ctx, ownerID, menuID); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `UPDATE menus SET name = $1, updated_at = now() WHERE id = $2`, name, menuID)
	return err
}

// DeleteMenu removes the menu; sections and items cascade in the schema.
func DeleteMenu(ctx context.Context, ownerID string, menuID int64) error {
	if err := requireMenuOwner(ctx, ownerID, menuID); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `DELETE FROM menus WHERE id = $1`, menuID)
	return err
}

// requireMenuOwner walks the menu -> business chain and verifies ownership.
func requireMenuOwner(ctx context.Context, ownerID string, menuID int64) error {
	var owner string
	err := db.Pool.QueryRow(ctx, `
		SELECT b.owner_id FROM menus m
		JOIN businesses b ON b.id = m.business_id
		WHERE m.id = $1`,
		menuID,
	).Scan(&owner)
	if err != nil {
		return mapNoRows(err)
	}
	if owner != ownerID {
		return ErrNotOwner
	}
	return nil
}
