package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ghalymotors/showroom/pkg/catalog"
	"github.com/ghalymotors/showroom/pkg/leads"
	"github.com/ghalymotors/showroom/pkg/selection"
)

// Notification is the short-lived message/severity pair the view shows as a
// toast. Severity is "success", "error" or "warning".
type Notification struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

func notifySuccess(msg string) Notification {
	return Notification{Message: msg, Severity: "success"}
}

func notifyError(msg string) Notification {
	return Notification{Message: msg, Severity: "error"}
}

// vehicleCard is a catalog vehicle plus the per-card UI state.
type vehicleCard struct {
	catalog.Vehicle
	BodyStyle string `json:"body_style"`
	Favorited bool   `json:"favorited"`
	Compared  bool   `json:"compared"`
}

func (s *Server) card(v catalog.Vehicle) vehicleCard {
	return vehicleCard{
		Vehicle:   v,
		BodyStyle: catalog.DeriveBodyStyle(v.Type),
		Favorited: s.State.Favorited(v.ID),
		Compared:  s.State.Compared(v.ID),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func vehicleID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

func (s *Server) handleVehicles(w http.ResponseWriter, r *http.Request) {
	visible := selection.VisibleList(s.Catalog, s.State)
	cards := make([]vehicleCard, 0, len(visible))
	for _, v := range visible {
		cards = append(cards, s.card(v))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(cards),
		"vehicles": cards,
	})
}

func (s *Server) handleVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}
	v, ok := s.Catalog.ByID(id)
	if !ok {
		http.Error(w, "vehicle not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.card(v))
}

func (s *Server) handleOpenVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}
	// Opening an unknown id is a no-op: no panel, no error.
	s.State.OpenVehicle(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCloseVehicle(w http.ResponseWriter, r *http.Request) {
	s.State.CloseVehicle()
	w.WriteHeader(http.StatusNoContent)
}

// sortOption is a value/label pair for the sort dropdown.
type sortOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func sortOptions() []sortOption {
	return []sortOption{
		{selection.SortPopularity, "Popularity"},
		{selection.SortPriceAsc, "Price: Low to High"},
		{selection.SortPriceDesc, "Price: High to Low"},
		{selection.SortFuelEconomy, "Best Fuel Economy"},
		{selection.SortReliability, "Most Reliable"},
	}
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"makes":        s.Config.Makes,
		"body_styles":  s.Config.BodyStyles,
		"sort_options": sortOptions(),
		"active": map[string]string{
			"search":     s.State.SearchText(),
			"make":       s.State.ActiveMake(),
			"body_style": s.State.ActiveBodyStyle(),
			"sort":       s.State.SortKey(),
		},
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.State.SetSearchText(req.Text)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleMake(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Make string `json:"make"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.State.ToggleMakeFilter(req.Make)
	writeJSON(w, http.StatusOK, map[string]string{"active_make": s.State.ActiveMake()})
}

func (s *Server) handleToggleStyle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Style string `json:"style"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.State.ToggleBodyStyleFilter(req.Style)
	writeJSON(w, http.StatusOK, map[string]string{"active_body_style": s.State.ActiveBodyStyle()})
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.State.SetSortKey(req.Key)
	writeJSON(w, http.StatusOK, map[string]string{"sort": s.State.SortKey()})
}

func (s *Server) handleResetFilters(w http.ResponseWriter, r *http.Request) {
	s.State.ResetFilters()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	ids := s.State.Favorites()
	cards := make([]vehicleCard, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.Catalog.ByID(id); ok {
			cards = append(cards, s.card(v))
		}
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}

	favorited := s.State.ToggleFavorite(id)
	msg := "Removed from favorites"
	if favorited {
		msg = "Added to favorites"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"favorited":    favorited,
		"notification": notifySuccess(msg),
	})
}

func (s *Server) handleToggleCompare(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}

	compared, err := s.State.ToggleCompare(id)
	if errors.Is(err, selection.ErrCompareLimit) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"notification": notifyError("You can compare up to 3 vehicles"),
		})
		return
	}

	msg := "Removed from comparison"
	if compared {
		msg = "Added to comparison"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"compared":     compared,
		"compare_ids":  s.State.CompareIDs(),
		"notification": notifySuccess(msg),
	})
}

func (s *Server) handleCompareMatrix(w http.ResponseWriter, r *http.Request) {
	matrix, err := selection.BuildMatrix(s.compareVehicles())
	if errors.Is(err, selection.ErrTooFewVehicles) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"notification": notifyError("Select at least 2 vehicles to compare"),
		})
		return
	}
	writeJSON(w, http.StatusOK, matrix)
}

func (s *Server) handleClearCompare(w http.ResponseWriter, r *http.Request) {
	s.State.ClearCompare()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notification": notifySuccess("Comparison cleared"),
	})
}

// compareVehicles resolves the compare list to vehicles, in selection order.
func (s *Server) compareVehicles() []catalog.Vehicle {
	ids := s.State.CompareIDs()
	out := make([]catalog.Vehicle, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.Catalog.ByID(id); ok {
			out = append(out, v)
		}
	}
	return out
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	id, err := vehicleID(r)
	if err != nil {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}
	v, ok := s.Catalog.ByID(id)
	if !ok {
		http.Error(w, "vehicle not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, catalog.ShareMessage(v, s.Config.BaseURL, s.Config.Currency, s.Config.Company))
}

func (s *Server) handleTestDriveLead(w http.ResponseWriter, r *http.Request) {
	s.captureLead(w, r, leads.KindTestDrive, "Test drive scheduled! We will contact you soon.")
}

func (s *Server) handleContactLead(w http.ResponseWriter, r *http.Request) {
	s.captureLead(w, r, leads.KindContact, "Message sent! We will contact you soon.")
}

func (s *Server) captureLead(w http.ResponseWriter, r *http.Request, kind, successMsg string) {
	var lead leads.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	lead.Kind = kind

	if err := lead.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"notification": notifyError(err.Error()),
		})
		return
	}
	if _, ok := s.Catalog.ByID(lead.VehicleID); !ok {
		http.Error(w, "vehicle not found", http.StatusNotFound)
		return
	}

	id, err := s.DB.InsertLead(r.Context(), lead)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":           id,
		"notification": notifySuccess(successMsg),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	byMake := make(map[string]int)
	byStyle := make(map[string]int)
	for _, v := range s.Catalog.Vehicles() {
		byMake[v.Make]++
		byStyle[catalog.DeriveBodyStyle(v.Type)]++
	}

	leadCounts, err := s.DB.CountLeads(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles":      s.Catalog.Len(),
		"by_make":       byMake,
		"by_body_style": byStyle,
		"favorites":     len(s.State.Favorites()),
		"leads":         leadCounts,
	})
}

func (s *Server) handleGetDarkMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"dark_mode": s.DB.DarkMode()})
}

func (s *Server) handleSetDarkMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DarkMode bool `json:"dark_mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.DB.SetDarkMode(req.DarkMode)
	w.WriteHeader(http.StatusNoContent)
}
