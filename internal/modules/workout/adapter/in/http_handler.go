package in

import (
	"net/http"

	workoutdto "watchtrainer/internal/modules/workout/dto"
	workoutin "watchtrainer/internal/modules/workout/port/in"
	"watchtrainer/internal/platform/httpjson"
)

type HTTPHandler struct {
	usecase workoutin.Usecase
}

func NewHTTPHandler(usecase workoutin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.usecase.Status(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, status)
}

func (h *HTTPHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	session, err := h.usecase.Start(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, session)
}

func (h *HTTPHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	session, err := h.usecase.Stop(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, session)
}

func (h *HTTPHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	session, err := h.usecase.Resume(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, session)
}

func (h *HTTPHandler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	var input workoutdto.EndInput
	if err := httpjson.Decode(r, &input); err != nil {
		httpjson.WriteError(w, err)
		return
	}
	summary, err := h.usecase.End(r.Context(), input)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, summary)
}

type typeRequest struct {
	WorkoutType string `json:"workout_type"`
}

func (h *HTTPHandler) HandleSetType(w http.ResponseWriter, r *http.Request) {
	var req typeRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}
	status, err := h.usecase.SetWorkoutType(r.Context(), req.WorkoutType)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, status)
}
