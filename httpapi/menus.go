package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"menuboard/currency"
	"menuboard/services"
)

func (s *Server) menusEndpoint(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		businessID, err := queryID(r, "business_id")
		if err != nil {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		menus, err := services.ListMenus(r.Context(), owner, businessID)
		if err != nil {
			writeServiceError(w, "list menus", err)
			return
		}
		respondJSON(w, menus)
	case http.MethodPost:
		var p struct {
			BusinessID int64  `json:"businessId"`
			Name       string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		m, err := services.CreateMenu(r.Context(), owner, p.BusinessID, p.Name)
		if err != nil {
			writeServiceOrValidation(w, "create menu", err)
			return
		}
		respondJSON(w, m)
	case http.MethodPut:
		var p struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := services.RenameMenu(r.Context(), owner, p.ID, p.Name); err != nil {
			writeServiceOrValidation(w, "rename menu", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		id, err := queryID(r, "id")
		if err != nil {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := services.DeleteMenu(r.Context(), owner, id); err != nil {
			writeServiceError(w, "delete menu", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) sectionsEndpoint(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodPost:
		var p struct {
			MenuID int64  `json:"menuId"`
			Title  string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		sec, err := services.AddSection(r.Context(), owner, p.MenuID, p.Title)
		if err != nil {
			writeServiceOrValidation(w, "add section", err)
			return
		}
		respondJSON(w, sec)
	case http.MethodPut:
		var p struct {
			ID       int64  `json:"id"`
			Title    string `json:"title"`
			Position *int   `json:"position"`
		}
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if p.Title != "" {
			if err := services.RenameSection(r.Context(), owner, p.ID, p.Title); err != nil {
				writeServiceOrValidation(w, "rename section", err)
				return
			}
		}
		if p.Position != nil {
			if err := services.MoveSection(r.Context(), owner, p.ID, *p.Position); err != nil {
				writeServiceError(w, "move section", err)
				return
			}
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		id, err := queryID(r, "id")
		if err != nil {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := services.DeleteSection(r.Context(), owner, id); err != nil {
			writeServiceError(w, "delete section", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// itemPayload keeps transport-level parsing away from the services: prices
// arrive as decimal strings ("12.50") and are stored as integer cents.
type itemPayload struct {
	ID          int64    `json:"id"`
	SectionID   int64    `json:"sectionId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceRaw    string   `json:"price"`
	Tags        []string `json:"tags"`

	priceCents int64
}

func (p *itemPayload) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(p.PriceRaw) == "" {
		return errors.New("price is required")
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(p.PriceRaw, ",", "."), 64)
	if err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	if amount < 0 {
		return errors.New("price must be >= 0")
	}
	p.priceCents = currency.ToCents(amount)
	return nil
}

func (s *Server) itemsEndpoint(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodPost:
		var p itemPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := p.Validate(); err != nil {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		item, err := services.AddItem(r.Context(), owner, p.SectionID, services.ItemInput{
			Name:        p.Name,
			Description: p.Description,
			PriceCents:  p.priceCents,
			Tags:        p.Tags,
		})
		if err != nil {
			writeServiceError(w, "add item", err)
			return
		}
		respondJSON(w, item)
	case http.MethodPut:
		var p itemPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if p.ID == 0 {
			respondError(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := p.Validate(); err != nil {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		err := services.UpdateItem(r.Context(), owner, p.ID, services.ItemInput{
			Name:        p.Name,
			Description: p.Description,
			PriceCents:  p.priceCents,
			Tags:        p.Tags,
		})
		if err != nil {
			writeServiceError(w, "update item", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		id, err := queryID(r, "id")
		if err != nil {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := services.DeleteItem(r.Context(), owner, id); err != nil {
			writeServiceError(w, "delete item", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

const maxImageBytes = 5 << 20

// uploadItemImage accepts a multipart upload and binds it to an item. The
// previously bound image, if any, is removed from the store.
func (s *Server) uploadItemImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}
	// MaxBytesReader enforces the cap on the wire; ParseMultipartForm's
	// argument only bounds in-memory buffering.
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		respondError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	itemID, err := strconv.ParseInt(r.FormValue("itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		respondError(w, "itemId is required", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	key, err := s.images.Save(file, header.Filename)
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	previous, err := services.SetItemImage(r.Context(), owner, itemID, key)
	if err != nil {
		s.images.Remove(key)
		writeServiceError(w, "set item image", err)
		return
	}
	if previous != "" {
		if err := s.images.Remove(previous); err != nil {
			log.Warningf("remove replaced image %s: %v", previous, err)
		}
	}
	respondJSON(w, map[string]string{"imageUrl": services.ImageURL(key)})
}

func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// writeServiceOrValidation treats non-sentinel service errors as validation
// failures (they are produced before any write happens).
func writeServiceOrValidation(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrNotOwner) || errors.Is(err, services.ErrNotAdmin) {
		writeServiceError(w, op, err)
		return
	}
	respondError(w, err.Error(), http.StatusBadRequest)
}
