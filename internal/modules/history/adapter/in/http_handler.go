package in

import (
	"net/http"
	"time"

	historyin "watchtrainer/internal/modules/history/port/in"
	"watchtrainer/internal/platform/httpjson"
)

type HTTPHandler struct {
	usecase historyin.Usecase
	now     func() time.Time
}

func NewHTTPHandler(usecase historyin.Usecase, now func() time.Time) *HTTPHandler {
	return &HTTPHandler{usecase: usecase, now: now}
}

// HandleList serves GET /history?since=&until= (RFC3339, defaults: last 7 days).
func (h *HTTPHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	since, err := httpjson.TimeParam(r, "since", now.AddDate(0, 0, -7))
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	until, err := httpjson.TimeParam(r, "until", now)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	sessions, err := h.usecase.QueryBetween(r.Context(), since, until)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, sessions)
}
