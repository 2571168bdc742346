package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"menuboard/render"
	"menuboard/services"
)

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// respondError keeps JSON error formatting consistent across endpoints.
func respondError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service sentinels onto status codes: missing
// identity and ownership failures are distinguished from plain not-found.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, "not found", http.StatusNotFound)
	case errors.Is(err, services.ErrNotOwner):
		respondError(w, "not allowed", http.StatusForbidden)
	case errors.Is(err, services.ErrNotAdmin):
		respondError(w, "admin only", http.StatusForbidden)
	default:
		// Backend error detail stays in the log; clients get a generic body.
		log.Errorf("%s: %v", op, err)
		respondError(w, "internal error", http.StatusInternalServerError)
	}
}

// userID extracts the identity established by the external identity layer.
func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

// requireUser writes the generic "please sign in" response when no identity
// is present and reports whether the caller may proceed.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := userID(r)
	if id == "" {
		respondError(w, "please sign in", http.StatusUnauthorized)
		return "", false
	}
	return id, true
}

// publicMenuResponse shapes the JSON payload for /api/menu/<slug>.
func publicMenuResponse(v *render.View, hasMenu bool) map[string]any {
	sections := make([]map[string]any, 0, len(v.Sections))
	for _, sec := range v.Sections {
		items := make([]map[string]any, 0, len(sec.Items))
		for _, it := range sec.Items {
			items = append(items, map[string]any{
				"name":        it.Name,
				"description": it.Description,
				"price":       it.Price,
				"tags":        it.Tags,
				"imageUrl":    it.ImageURL,
			})
		}
		sections = append(sections, map[string]any{
			"title":    sec.Title,
			"anchorId": sec.AnchorID,
			"items":    items,
		})
	}
	return map[string]any{
		"businessInfo": map[string]any{
			"name":     v.BusinessName,
			"slug":     v.Slug,
			"currency": v.Currency,
		},
		"theme": map[string]any{
			"preset":    v.Theme.ID,
			"layout":    string(v.Layout),
			"styleVars": string(v.StyleVars),
		},
		"hasMenu":  hasMenu,
		"sections": sections,
	}
}
