package in

import (
	"net/http"

	goaldto "watchtrainer/internal/modules/goal/dto"
	goalin "watchtrainer/internal/modules/goal/port/in"
	"watchtrainer/internal/platform/httpjson"
)

type HTTPHandler struct {
	usecase goalin.Usecase
}

func NewHTTPHandler(usecase goalin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

// HandleList serves GET /goals; ?all=true includes completed goals.
func (h *HTTPHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		goals []goaldto.GoalOutput
		err   error
	)
	if r.URL.Query().Get("all") == "true" {
		goals, err = h.usecase.ListGoals(r.Context())
	} else {
		goals, err = h.usecase.ListActiveGoals(r.Context())
	}
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, goals)
}

func (h *HTTPHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input goaldto.CreateGoalInput
	if err := httpjson.Decode(r, &input); err != nil {
		httpjson.WriteError(w, err)
		return
	}
	goal, err := h.usecase.CreateGoal(r.Context(), input)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, goal)
}

func (h *HTTPHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.usecase.RefreshProgress(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, result)
}
