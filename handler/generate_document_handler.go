package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/gommon/log"

	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
)

func (h *RemittanceHandler) GenerateDocument(w http.ResponseWriter, r *http.Request) {
	var req entity.GenerateDocumentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "GenerateDocument", fmt.Errorf("%w: %v", consts.ErrInvalidRequest, err))
		return
	}

	result, err := h.Usecase.GenerateDocument(r.Context(), req)
	if err != nil {
		writeError(w, "GenerateDocument", err)
		return
	}

	if result.OutputMode != consts.OutputModeDownload {
		writeData(w, result)
		return
	}

	w.Header().Set("Content-Type", consts.DocxMimeType)
	w.Header().Set("Content-Disposition", contentDisposition(result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		log.Errorf("[GenerateDocument] failed to send %s: %v", result.FileName, err)
	}
}

func (h *RemittanceHandler) GetTemplateVariables(w http.ResponseWriter, r *http.Request) {
	names, err := h.Usecase.TemplateVariables(r.Context())
	if err != nil {
		writeError(w, "GetTemplateVariables", err)
		return
	}
	writeData(w, names)
}
