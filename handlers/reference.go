package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
)

func (h *Handler) GetReference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, publicHourly, models.ReferenceResponse{
		Partners: h.catalog.Partners(),
		States:   h.catalog.StateOptions(),
		Periods:  h.catalog.Periods(),
	})
}

// GetStateDistricts lists the static districts of a state. States without
// their own figures report the default record's districts, renamed, with
// borrowed set.
func (h *Handler) GetStateDistricts(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["state"]
	profile := h.catalog.Profile(state)
	writeJSON(w, http.StatusOK, publicHourly, models.DistrictListResponse{
		State:     profile.ID,
		Label:     profile.Label,
		Districts: profile.Overview.Districts,
		Borrowed:  profile.Borrowed,
	})
}
