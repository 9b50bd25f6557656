package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/gommon/log"

	"github.com/radhian/remittance-docgen/consts"
)

func (h *RemittanceHandler) ExportRemitters(w http.ResponseWriter, r *http.Request) {
	h.exportRecords(w, r, consts.RecordKindRemitter, "remitters.xlsx")
}

func (h *RemittanceHandler) ExportBeneficiaries(w http.ResponseWriter, r *http.Request) {
	h.exportRecords(w, r, consts.RecordKindBeneficiary, "beneficiaries.xlsx")
}

func (h *RemittanceHandler) exportRecords(w http.ResponseWriter, r *http.Request, kind, fileName string) {
	data, err := h.Usecase.ExportRecords(r.Context(), kind)
	if err != nil {
		writeError(w, "ExportRecords", err)
		return
	}

	w.Header().Set("Content-Type", consts.XlsxMimeType)
	w.Header().Set("Content-Disposition", contentDisposition(fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Errorf("[ExportRecords] failed to send %s: %v", fileName, err)
	}
}
