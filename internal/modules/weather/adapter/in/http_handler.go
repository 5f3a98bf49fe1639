package in

import (
	"net/http"

	weatherin "watchtrainer/internal/modules/weather/port/in"
	"watchtrainer/internal/platform/httpjson"
)

type HTTPHandler struct {
	usecase weatherin.Usecase
}

func NewHTTPHandler(usecase weatherin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

// HandleCurrent serves the last polled weather; ?refresh=true forces a fetch.
func (h *HTTPHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	fetch := h.usecase.Latest
	if r.URL.Query().Get("refresh") == "true" {
		fetch = h.usecase.Current
	}
	current, err := fetch(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, current)
}
