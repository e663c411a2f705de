package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/drilldown"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/observability"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

type CreateSessionRequest struct {
	State string  `json:"state"`
	Seed  *uint64 `json:"seed,omitempty"`
}

type SelectRequest struct {
	Code string `json:"code"`
}

// ExpandDistrict is a one-shot expansion of a district into blocks without
// a session. The state comes from the query string and defaults to "all".
func (h *Handler) ExpandDistrict(w http.ResponseWriter, r *http.Request) {
	seed, err := h.requestSeed(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	state := r.URL.Query().Get("state")
	if state == "" {
		state = dataset.AllStates
	}
	code := mux.Vars(r)["code"]

	_, span := observability.Tracer().Start(r.Context(), "drilldown.ExpandDistrict")
	span.SetAttributes(attribute.String("drilldown.state", state), attribute.String("drilldown.district", code))
	defer span.End()

	profile := h.catalog.Profile(state)
	district, ok := h.catalog.District(state, code)
	if !ok {
		writeError(w, http.StatusNotFound, "district "+strconv.Quote(code)+" not found in state "+strconv.Quote(profile.ID))
		return
	}
	details := drilldown.ExpandDistrict(district, profile.Overview, utils.NewSeededJitter(seed))
	h.metrics.RecordGenerated(len(details.Blocks), 0)

	writeJSON(w, http.StatusOK, noStore, models.DrillView{
		Level:    string(drilldown.LevelDistrict),
		State:    profile.ID,
		Seed:     seed,
		District: &details,
	})
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var seed uint64
	if req.Seed != nil {
		seed = *req.Seed
		w.Header().Set(seedHeader, strconv.FormatUint(seed, 10))
	} else {
		var err error
		if seed, err = h.requestSeed(w, r); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	sel, _ := h.catalog.Resolve(models.FilterSelection{State: req.State})
	profile := h.catalog.Profile(sel.State)
	id, nav := h.sessions.Create(profile.ID, profile.Overview, seed)
	nav.OnGenerate(h.metrics.RecordGenerated)
	h.metrics.SetSessions(h.sessions.Count())
	h.log.Debug("drilldown session created",
		zap.String("session", id),
		zap.String("state", profile.ID),
		zap.Uint64("seed", seed),
	)

	view := nav.View()
	view.SessionID = id
	w.Header().Set("Location", r.URL.Path+"/"+id)
	writeJSON(w, http.StatusCreated, noStore, view)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	nav, err := h.sessions.Get(id)
	if err != nil {
		h.drillError(w, err)
		return
	}
	h.writeView(w, id, nav)
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(mux.Vars(r)["id"]); err != nil {
		h.drillError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SelectDistrict(w http.ResponseWriter, r *http.Request) {
	h.selectChild(w, r, func(nav *drilldown.Navigator, code string) error {
		_, err := nav.SelectDistrict(code)
		return err
	})
}

func (h *Handler) SelectBlock(w http.ResponseWriter, r *http.Request) {
	h.selectChild(w, r, func(nav *drilldown.Navigator, code string) error {
		_, err := nav.SelectBlock(code)
		return err
	})
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	nav, err := h.sessions.Get(id)
	if err != nil {
		h.drillError(w, err)
		return
	}
	nav.Back()
	h.writeView(w, id, nav)
}

func (h *Handler) selectChild(w http.ResponseWriter, r *http.Request, sel func(*drilldown.Navigator, string) error) {
	id := mux.Vars(r)["id"]
	nav, err := h.sessions.Get(id)
	if err != nil {
		h.drillError(w, err)
		return
	}
	var req SelectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	_, span := observability.Tracer().Start(r.Context(), "drilldown.Select")
	span.SetAttributes(attribute.String("drilldown.session", id), attribute.String("drilldown.code", req.Code))
	defer span.End()

	if err := sel(nav, req.Code); err != nil {
		span.RecordError(err)
		h.drillError(w, err)
		return
	}
	h.writeView(w, id, nav)
}

func (h *Handler) writeView(w http.ResponseWriter, id string, nav *drilldown.Navigator) {
	view := nav.View()
	view.SessionID = id
	w.Header().Set(seedHeader, strconv.FormatUint(view.Seed, 10))
	writeJSON(w, http.StatusOK, noStore, view)
}

func (h *Handler) drillError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, drilldown.ErrSessionNotFound),
		errors.Is(err, drilldown.ErrUnknownDistrict),
		errors.Is(err, drilldown.ErrUnknownBlock):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, drilldown.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.Error("drilldown request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
