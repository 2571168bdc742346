package httpapi

import (
	"encoding/json"
	"net/http"

	"menuboard/models"
	"menuboard/services"
	"menuboard/theme"
)

type businessPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type businessResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Currency string `json:"currency"`
	Preset   string `json:"themePreset"`
}

func toBusinessResponse(b *models.Business) businessResponse {
	return businessResponse{
		ID:       b.ID,
		Name:     b.Name,
		Slug:     b.Slug,
		Currency: b.Currency,
		Preset:   b.ThemePreset,
	}
}

func (s *Server) businessEndpoint(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		b, err := services.GetBusinessByOwner(r.Context(), owner)
		if err != nil {
			writeServiceError(w, "get business", err)
			return
		}
		respondJSON(w, toBusinessResponse(b))
	case http.MethodPost:
		var p businessPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		b, err := services.CreateBusiness(r.Context(), owner, p.Name, p.Currency)
		if err != nil {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Infof("business %s created by %s", b.Slug, owner)
		respondJSON(w, toBusinessResponse(b))
	case http.MethodPut:
		var p businessPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if p.ID == 0 {
			respondError(w, "id is required", http.StatusBadRequest)
			return
		}
		b, err := services.UpdateBusiness(r.Context(), owner, p.ID, p.Name, p.Currency)
		if err != nil {
			writeServiceError(w, "update business", err)
			return
		}
		respondJSON(w, toBusinessResponse(b))
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type themePayload struct {
	BusinessID int64            `json:"businessId"`
	Preset     string           `json:"preset"`
	Overrides  *theme.Overrides `json:"overrides"`
}

func (s *Server) updateTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}
	var p themePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if p.BusinessID == 0 {
		respondError(w, "businessId is required", http.StatusBadRequest)
		return
	}
	if err := services.UpdateTheme(r.Context(), owner, p.BusinessID, p.Preset, p.Overrides); err != nil {
		writeServiceError(w, "update theme", err)
		return
	}
	// Echo back the resolved theme so the editor can preview exactly what
	// the public page will use.
	resolved := theme.Resolve(p.Preset, p.Overrides)
	respondJSON(w, map[string]any{
		"preset": resolved.ID,
		"layout": string(theme.SelectLayout(resolved)),
	})
}
