package services

import (
	"context"
	"encoding/json"
	"fmt"

	"menuboard/db"
	"menuboard/models"
)

// OrderTotal sums item snapshots; the total is always computed server-side.
func OrderTotal(items []models.OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.PriceCents * int64(it.Quantity)
	}
	return total
}

// ValidateOrderInput rejects obviously bad submissions before any DB work.
func ValidateOrderInput(items []models.OrderItemInput) error {
	if len(items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}
	for _, it := range items {
		if it.ItemID <= 0 {
			return fmt.Errorf("invalid item id: %d", it.ItemID)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("quantity must be positive")
		}
	}
	return nil
}

// CreateOrder places a pending order against the business behind slug.
// Every item is verified to belong to that business before insertion, and
// name/price snapshots are taken so later menu edits leave orders intact.
func CreateOrder(ctx context.Context, businessSlug, customerName, customerPhone string, inputs []models.OrderItemInput) (*models.Order, error) {
	if err := ValidateOrderInput(inputs); err != nil {
		return nil, err
	}
	b, err := GetBusinessBySlug(ctx, businessSlug)
	if err != nil {
		return nil, err
	}

	snapshots := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		var name string
		var priceCents int64
		err := db.Pool.QueryRow(ctx, `
			SELECT i.name, i.price_cents FROM items i
			JOIN sections s ON s.id = i.section_id
			JOIN menus m ON m.id = s.menu_id
			WHERE i.id = $1 AND m.business_id = $2`,
			in.ItemID, b.ID,
		).Scan(&name, &priceCents)
		if err != nil {
			if mapNoRows(err) == ErrNotFound {
				return nil, fmt.Errorf("item %d does not belong to %s: %w", in.ItemID, businessSlug, ErrNotFound)
			}
			return nil, err
		}
		snapshots = append(snapshots, models.OrderItem{
			ItemID:     in.ItemID,
			Name:       name,
			PriceCents: priceCents,
			Quantity:   in.Quantity,
		})
	}

	itemsJSON, err := json.Marshal(snapshots)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	total := OrderTotal(snapshots)

	var id int64
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO orders (business_id, customer_name, customer_phone, items, total_cents, status)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6)
		RETURNING id`,
		b.ID, customerName, customerPhone, itemsJSON, total, models.OrderStatusPending,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &models.Order{
		ID:            id,
		BusinessID:    b.ID,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Items:         snapshots,
		TotalCents:    total,
		Status:        models.OrderStatusPending,
	}, nil
}

// ListOrders returns the business's orders, newest first.
func ListOrders(ctx context.Context, ownerID string, businessID int64) ([]models.Order, error) {
	owner, err := businessOwner(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if owner != ownerID {
		return nil, ErrNotOwner
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT id, business_id, customer_name, customer_phone, items, total_cents, status
		FROM orders WHERE business_id = $1
		ORDER BY id DESC`,
		businessID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var itemsJSON []byte
		if err := rows.Scan(&o.ID, &o.BusinessID, &o.CustomerName, &o.CustomerPhone,
			&itemsJSON, &o.TotalCents, &o.Status); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order %d items: %w", o.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// CompleteOrder flips a pending order to completed. The two statuses are the
// whole workflow; there is nothing else to transition to.
func CompleteOrder(ctx context.Context, ownerID string, orderID int64) error {
	var owner string
	err := db.Pool.QueryRow(ctx, `
		SELECT b.owner_id FROM orders o
		JOIN businesses b ON b.id = o.business_id
		WHERE o.id = $1`,
		orderID,
	).Scan(&owner)
	if err != nil {
		return mapNoRows(err)
	}
	if owner != ownerID {
		return ErrNotOwner
	}
	res, err := db.Pool.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3`,
		models.OrderStatusCompleted, orderID, models.OrderStatusPending,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("order %d is not pending", orderID)
	}
	return nil
}
