package in

import (
	"net/http"

	coachin "watchtrainer/internal/modules/coach/port/in"
	"watchtrainer/internal/platform/httpjson"
)

type HTTPHandler struct {
	usecase coachin.Usecase
}

func NewHTTPHandler(usecase coachin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.Message(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, out)
}

// HandleTip serves GET /coach/tip?type=yoga.
func (h *HTTPHandler) HandleTip(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.Tip(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, out)
}

func (h *HTTPHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.Quote(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, out)
}
