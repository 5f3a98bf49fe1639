package in

import (
	"net/http"

	placesin "watchtrainer/internal/modules/places/port/in"
	"watchtrainer/internal/platform/httpjson"
)

type HTTPHandler struct {
	usecase placesin.Usecase
}

func NewHTTPHandler(usecase placesin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

// HandleSuggest serves GET /places?type=running.
func (h *HTTPHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	suggestion, err := h.usecase.Suggest(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, suggestion)
}
