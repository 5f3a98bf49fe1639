package in

import (
	"net/http"

	statsin "watchtrainer/internal/modules/stats/port/in"
	"watchtrainer/internal/platform/httpjson"
)

type HTTPHandler struct {
	usecase statsin.Usecase
}

func NewHTTPHandler(usecase statsin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

// HandleStats serves GET /stats?period=today|week|month|all_time.
func (h *HTTPHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.usecase.ComputeStats(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, stats)
}

func (h *HTTPHandler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	days, err := h.usecase.ComputeWeeklyBreakdown(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, days)
}
