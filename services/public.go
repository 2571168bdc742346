package services

import (
	"context"

	"menuboard/db"
	"menuboard/models"
	"menuboard/slug"
)

// PublicMenu is the read-only payload behind /<slug>: business info plus
// non-empty sections sorted by position, items carrying resolved image URLs.
type PublicMenu struct {
	Business models.Business
	HasMenu  bool
	Sections []models.PublicSection
}

// GetMenuBySlug loads the public menu for a business slug. Returns
// ErrNotFound when no business matches; a business without a menu comes back
// with HasMenu false so the caller can render the empty-menu placeholder.
func GetMenuBySlug(ctx context.Context, s string) (*PublicMenu, error) {
	b, err := GetBusinessBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	pm := &PublicMenu{Business: *b}

	var menuID int64
	err = db.Pool.QueryRow(ctx,
		`SELECT id FROM menus WHERE business_id = $1 ORDER BY id LIMIT 1`, b.ID,
	).Scan(&menuID)
	if err != nil {
		if mapNoRows(err) == ErrNotFound {
			return pm, nil
		}
		return nil, err
	}
	pm.HasMenu = true

	rows, err := db.Pool.Query(ctx, `
		SELECT s.id, s.title, s.position,
		       i.id, i.name, COALESCE(i.description, ''), i.price_cents,
		       COALESCE(i.tags, '{}'), COALESCE(i.image_key, '')
		FROM sections s
		JOIN items i ON i.section_id = s.id
		WHERE s.menu_id = $1
		ORDER BY s.position, s.id, i.position, i.id`,
		menuID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var current *models.PublicSection
	for rows.Next() {
		var (
			sec  models.Section
			item models.Item
		)
		if err := rows.Scan(&sec.ID, &sec.Title, &sec.Position,
			&item.ID, &item.Name, &item.Description, &item.PriceCents,
			&item.Tags, &item.ImageKey); err != nil {
			return nil, err
		}
		sec.MenuID = menuID
		item.SectionID = sec.ID
		if current == nil || current.ID != sec.ID {
			pm.Sections = append(pm.Sections, models.PublicSection{
				Section:  sec,
				AnchorID: slug.Make(sec.Title),
			})
			current = &pm.Sections[len(pm.Sections)-1]
		}
		current.Items = append(current.Items, models.PublicItem{
			Item:     item,
			ImageURL: ImageURL(item.ImageKey),
		})
	}
	return pm, rows.Err()
}

// ImageURL resolves a stored image key to its public URL ("" stays "").
func ImageURL(key string) string {
	if key == "" {
		return ""
	}
	return "/images/" + key
}
