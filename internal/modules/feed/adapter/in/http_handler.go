package in

import (
	"net/http"

	feeddto "watchtrainer/internal/modules/feed/dto"
	feedin "watchtrainer/internal/modules/feed/port/in"
	"watchtrainer/internal/platform/httpjson"
)

type HTTPHandler struct {
	usecase feedin.Usecase
}

func NewHTTPHandler(usecase feedin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.usecase.Latest(r.Context())
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, snapshot)
}

func (h *HTTPHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	var input feeddto.SnapshotInput
	if err := httpjson.Decode(r, &input); err != nil {
		httpjson.WriteError(w, err)
		return
	}
	snapshot, err := h.usecase.Publish(r.Context(), input)
	if err != nil {
		httpjson.WriteError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, snapshot)
}
