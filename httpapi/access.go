package httpapi

import (
	"encoding/json"
	"net/http"

	"menuboard/services"
)

func (s *Server) accessRequestsEndpoint(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		status, err := services.GetAccessStatus(r.Context(), user)
		if err != nil {
			writeServiceError(w, "access status", err)
			return
		}
		respondJSON(w, map[string]string{"status": status})
	case http.MethodPost:
		var p struct {
			FullName string `json:"fullName"`
			Note     string `json:"note"`
		}
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		id, err := services.CreateAccessRequest(r.Context(), user, p.FullName, p.Note)
		if err != nil {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Infof("access request %s filed by %s", id, user)
		go s.notifier.AccessRequested(&services.AccessRequest{
			ID:       id,
			UserID:   user,
			FullName: p.FullName,
			Note:     p.Note,
		})
		respondJSON(w, map[string]string{"id": id, "status": services.AccessStatusPending})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// adminAccessRequests lists and reviews pending requests. The allowlist
// check happens inside the service functions.
func (s *Server) adminAccessRequests(w http.ResponseWriter, r *http.Request) {
	reviewer, ok := requireUser(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		list, err := services.ListPendingAccessRequests(r.Context(), s.cfg.Admin, reviewer, 50)
		if err != nil {
			writeServiceError(w, "list access requests", err)
			return
		}
		respondJSON(w, list)
	case http.MethodPost:
		var p struct {
			ID     string `json:"id"`
			Action string `json:"action"` // "approve" or "reject"
			Reason string `json:"reason"`
		}
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		var err error
		switch p.Action {
		case "approve":
			err = services.ApproveAccessRequest(r.Context(), s.cfg.Admin, reviewer, p.ID)
		case "reject":
			err = services.RejectAccessRequest(r.Context(), s.cfg.Admin, reviewer, p.ID, p.Reason)
		default:
			respondError(w, "action must be approve or reject", http.StatusBadRequest)
			return
		}
		if err != nil {
			writeServiceOrValidation(w, "review access request", err)
			return
		}
		log.Infof("access request %s %sd by %s", p.ID, p.Action, reviewer)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
