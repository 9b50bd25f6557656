package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/radhian/remittance-docgen/consts"
	"github.com/radhian/remittance-docgen/entity"
)

func (h *RemittanceHandler) ListRemitters(w http.ResponseWriter, r *http.Request) {
	records, err := h.Usecase.ListRemitters(r.Context())
	if err != nil {
		writeError(w, "ListRemitters", err)
		return
	}
	writeData(w, records)
}

func (h *RemittanceHandler) GetRemitter(w http.ResponseWriter, r *http.Request) {
	record, err := h.Usecase.GetRemitter(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "GetRemitter", err)
		return
	}
	writeData(w, record)
}

func (h *RemittanceHandler) CreateRemitter(w http.ResponseWriter, r *http.Request) {
	var req entity.Remitter
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "CreateRemitter", fmt.Errorf("%w: %v", consts.ErrInvalidRequest, err))
		return
	}

	record, err := h.Usecase.CreateRemitter(r.Context(), req)
	if err != nil {
		writeError(w, "CreateRemitter", err)
		return
	}
	writeData(w, record)
}

func (h *RemittanceHandler) UpdateRemitter(w http.ResponseWriter, r *http.Request) {
	var req entity.Remitter
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "UpdateRemitter", fmt.Errorf("%w: %v", consts.ErrInvalidRequest, err))
		return
	}

	record, err := h.Usecase.UpdateRemitter(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, "UpdateRemitter", err)
		return
	}
	writeData(w, record)
}

func (h *RemittanceHandler) ListBeneficiaries(w http.ResponseWriter, r *http.Request) {
	records, err := h.Usecase.ListBeneficiaries(r.Context())
	if err != nil {
		writeError(w, "ListBeneficiaries", err)
		return
	}
	writeData(w, records)
}

func (h *RemittanceHandler) GetBeneficiary(w http.ResponseWriter, r *http.Request) {
	record, err := h.Usecase.GetBeneficiary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "GetBeneficiary", err)
		return
	}
	writeData(w, record)
}

func (h *RemittanceHandler) CreateBeneficiary(w http.ResponseWriter, r *http.Request) {
	var req entity.Beneficiary
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "CreateBeneficiary", fmt.Errorf("%w: %v", consts.ErrInvalidRequest, err))
		return
	}

	record, err := h.Usecase.CreateBeneficiary(r.Context(), req)
	if err != nil {
		writeError(w, "CreateBeneficiary", err)
		return
	}
	writeData(w, record)
}

func (h *RemittanceHandler) UpdateBeneficiary(w http.ResponseWriter, r *http.Request) {
	var req entity.Beneficiary
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "UpdateBeneficiary", fmt.Errorf("%w: %v", consts.ErrInvalidRequest, err))
		return
	}

	record, err := h.Usecase.UpdateBeneficiary(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, "UpdateBeneficiary", err)
		return
	}
	writeData(w, record)
}
