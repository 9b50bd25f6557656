package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/radhian/remittance-docgen/config"
	"github.com/radhian/remittance-docgen/consts"
	usecase "github.com/radhian/remittance-docgen/usecase/remittance"
)

type RemittanceHandler struct {
	Usecase usecase.RemittanceUsecase
}

func NewRemittanceHandler(uc usecase.RemittanceUsecase) *RemittanceHandler {
	return &RemittanceHandler{Usecase: uc}
}

type APIResponse struct {
	OK               bool        `json:"ok"`
	Error            string      `json:"error,omitempty"`
	MissingVariables []string    `json:"missing_variables,omitempty"`
	Data             interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("[Handler] failed to encode response: %v", err)
	}
}

func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{OK: true, Data: data})
}

// writeError maps a usecase error onto a status code and error body.
func writeError(w http.ResponseWriter, tag string, err error) {
	resp := APIResponse{Error: err.Error()}

	var (
		status     int
		missingErr *usecase.MissingPlaceholdersError
	)
	switch {
	case errors.As(err, &missingErr):
		status = http.StatusBadRequest
		resp.MissingVariables = missingErr.Missing
	case errors.Is(err, config.ErrConfiguration), errors.Is(err, consts.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, consts.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, consts.ErrUpstream):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		log.Errorf("[%s] %v", tag, err)
	} else {
		log.Warnf("[%s] %v", tag, err)
	}
	writeJSON(w, status, resp)
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid request body: " + err.Error())
	}
	return nil
}

// contentDisposition names an attachment. Non-ASCII names get an RFC 5987
// filename* parameter next to an ASCII filename fallback.
func contentDisposition(name string) string {
	v := mime.FormatMediaType("attachment", map[string]string{"filename": name})
	if v == "" {
		return fmt.Sprintf("attachment; filename=%q", asciiFileName(name))
	}
	if !strings.Contains(v, "filename*=") {
		return v
	}
	return fmt.Sprintf("attachment; filename=%q; %s", asciiFileName(name), strings.TrimPrefix(v, "attachment; "))
}

func asciiFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, name)
}
