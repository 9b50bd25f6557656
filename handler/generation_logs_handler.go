package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/radhian/remittance-docgen/consts"
)

func (h *RemittanceHandler) GetGenerationLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(w, "GetGenerationLogs", fmt.Errorf("%w: limit must be a non-negative integer", consts.ErrInvalidRequest))
			return
		}
		limit = n
	}

	logs, err := h.Usecase.GetGenerationLogs(limit)
	if err != nil {
		writeError(w, "GetGenerationLogs", err)
		return
	}
	writeData(w, logs)
}

func (h *RemittanceHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{OK: true})
}
