// Package httpapi is the HTTP transport: the public menu pages plus the JSON
// API for owners, customers and admins. Identity arrives as an X-User-ID
// header set by the external identity layer; this package only checks
// presence and the admin allowlist.
package httpapi

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"menuboard/bot"
	"menuboard/config"
	"menuboard/currency"
	"menuboard/imagestore"
	"menuboard/render"
	"menuboard/services"
	"menuboard/theme"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("httpapi")

// Page templates ship inside the binary so deployments stay a single file.
//
//go:embed public_html/*.gohtml
var uiFS embed.FS

type Server struct {
	cfg      *config.Config
	rates    *currency.Cache
	images   *imagestore.Store
	notifier *bot.Notifier
	pages    *template.Template
}

func New(cfg *config.Config, rates *currency.Cache, images *imagestore.Store, notifier *bot.Notifier) (*Server, error) {
	pages, err := template.ParseFS(uiFS, "public_html/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:      cfg,
		rates:    rates,
		images:   images,
		notifier: notifier,
		pages:    pages,
	}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(s.publicPage))
	mux.Handle("/images/", http.StripPrefix("/images/", s.images.Handler()))
	mux.Handle("/api/menu/", http.HandlerFunc(s.publicMenuJSON))
	mux.Handle("/api/orders", http.HandlerFunc(s.ordersEndpoint))
	mux.Handle("/api/orders/complete", http.HandlerFunc(s.completeOrder))
	mux.Handle("/api/business", http.HandlerFunc(s.businessEndpoint))
	mux.Handle("/api/business/theme", http.HandlerFunc(s.updateTheme))
	mux.Handle("/api/menus", http.HandlerFunc(s.menusEndpoint))
	mux.Handle("/api/sections", http.HandlerFunc(s.sectionsEndpoint))
	mux.Handle("/api/items", http.HandlerFunc(s.itemsEndpoint))
	mux.Handle("/api/items/image", http.HandlerFunc(s.uploadItemImage))
	mux.Handle("/api/access-requests", http.HandlerFunc(s.accessRequestsEndpoint))
	mux.Handle("/api/admin/access-requests", http.HandlerFunc(s.adminAccessRequests))
	return mux
}

// publicPage serves /<slug>: the customer-facing read-only menu.
func (s *Server) publicPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	slug := strings.Trim(r.URL.Path, "/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	pm, err := services.GetMenuBySlug(r.Context(), slug)
	if err != nil && err != services.ErrNotFound {
		log.Errorf("public menu %s: %v", slug, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	switch render.StateFor(pm, err) {
	case render.StateBusinessNotFound:
		w.WriteHeader(http.StatusNotFound)
		s.renderPage(w, "notfound.gohtml", map[string]string{"Slug": slug})
	case render.StateEmptyMenu:
		s.renderPage(w, "empty.gohtml", map[string]string{"BusinessName": pm.Business.Name})
	default:
		view := render.Build(pm, s.rates.Rates(r.Context()))
		name := "menu_list.gohtml"
		if view.Layout == theme.KindCardGrid {
			name = "menu_cards.gohtml"
		}
		s.renderPage(w, name, view)
	}
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	if err := s.pages.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("render %s: %v", name, err)
	}
}

// publicMenuJSON serves /api/menu/<slug> for client-side renderers.
func (s *Server) publicMenuJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	slug := strings.TrimPrefix(r.URL.Path, "/api/menu/")
	if slug == "" || strings.Contains(slug, "/") {
		respondError(w, "missing slug", http.StatusBadRequest)
		return
	}
	pm, err := services.GetMenuBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, "public menu", err)
		return
	}
	view := render.Build(pm, s.rates.Rates(r.Context()))
	respondJSON(w, publicMenuResponse(view, pm.HasMenu))
}
