package controllers

import (
	"github.com/radhian/remittance-docgen/handler"

	"github.com/gorilla/mux"
)

func RegisterRemittanceRoutes(router *mux.Router, h *handler.RemittanceHandler) {
	router.HandleFunc("/healthz", h.Health).Methods("GET")
	router.HandleFunc("/generate", h.GenerateDocument).Methods("POST")
	router.HandleFunc("/template/variables", h.GetTemplateVariables).Methods("GET")
	router.HandleFunc("/generation_logs", h.GetGenerationLogs).Methods("GET")

	router.HandleFunc("/remitters/export", h.ExportRemitters).Methods("GET")
	router.HandleFunc("/remitters", h.ListRemitters).Methods("GET")
	router.HandleFunc("/remitters", h.CreateRemitter).Methods("POST")
	router.HandleFunc("/remitters/{id}", h.GetRemitter).Methods("GET")
	router.HandleFunc("/remitters/{id}", h.UpdateRemitter).Methods("PATCH")

	router.HandleFunc("/beneficiaries/export", h.ExportBeneficiaries).Methods("GET")
	router.HandleFunc("/beneficiaries", h.ListBeneficiaries).Methods("GET")
	router.HandleFunc("/beneficiaries", h.CreateBeneficiary).Methods("POST")
	router.HandleFunc("/beneficiaries/{id}", h.GetBeneficiary).Methods("GET")
	router.HandleFunc("/beneficiaries/{id}", h.UpdateBeneficiary).Methods("PATCH")
}
