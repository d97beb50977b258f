package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cimillas/park-operations/internal/domain"
)

const (
	codeNotFound             = "not_found"
	codeMethodNotAllowed     = "method_not_allowed"
	codeInvalidRequestBody   = "invalid_request_body"
	codeMissingRequiredField = "missing_required_field"
	codeInvalidDay           = "invalid_day"
	codeInvalidShift         = "invalid_shift"
	codeInvalidTier          = "invalid_tier"
	codeInvalidDateRange     = "invalid_date_range"
	codeInvalidCount         = "invalid_count"
	codeNameRequired         = "name_required"
	codeZonesRequired        = "zones_required"
	codeWrongRole            = "wrong_role"
	codeCookNotCertified     = "cook_not_certified"
	codeNotACafeteria        = "not_a_cafeteria"
	codeEmployeeNotFound     = "employee_not_found"
	codeAttractionNotFound   = "attraction_not_found"
	codeServicePlaceNotFound = "service_place_not_found"
	codeShowNotFound         = "show_not_found"
	codeTicketNotFound       = "ticket_not_found"
	codeFastPassNotFound     = "fast_pass_not_found"
	codeAlreadyAssigned      = "employee_already_assigned"
	codeEmployeeExists       = "employee_already_exists"
	codeAttractionExists     = "attraction_already_exists"
	codeServicePlaceExists   = "service_place_already_exists"
	codeShowExists           = "show_already_exists"
	codeFastPassInvalid      = "fast_pass_invalid"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps catalogue and staffing sentinels to HTTP responses.
// Anything unrecognized is reported as an internal error.
func writeDomainError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, codeInternalError
	msg := "internal error"

	for _, m := range domainErrorMap {
		if errors.Is(err, m.err) {
			status, code, msg = m.status, m.code, err.Error()
			break
		}
	}
	writeError(w, status, code, msg)
}

var domainErrorMap = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNilArgument, http.StatusBadRequest, codeMissingRequiredField},
	{domain.ErrInvalidShift, http.StatusBadRequest, codeInvalidShift},
	{domain.ErrInvalidTier, http.StatusBadRequest, codeInvalidTier},
	{domain.ErrInvalidDateRange, http.StatusBadRequest, codeInvalidDateRange},
	{domain.ErrInvalidCount, http.StatusBadRequest, codeInvalidCount},
	{domain.ErrNameRequired, http.StatusBadRequest, codeNameRequired},
	{domain.ErrZonesRequired, http.StatusBadRequest, codeZonesRequired},
	{domain.ErrWrongRole, http.StatusUnprocessableEntity, codeWrongRole},
	{domain.ErrCookNotCertified, http.StatusUnprocessableEntity, codeCookNotCertified},
	{domain.ErrNotACafeteria, http.StatusUnprocessableEntity, codeNotACafeteria},
	{domain.ErrEmployeeNotFound, http.StatusNotFound, codeEmployeeNotFound},
	{domain.ErrAttractionNotFound, http.StatusNotFound, codeAttractionNotFound},
	{domain.ErrServicePlaceNotFound, http.StatusNotFound, codeServicePlaceNotFound},
	{domain.ErrShowNotFound, http.StatusNotFound, codeShowNotFound},
	{domain.ErrTicketNotFound, http.StatusNotFound, codeTicketNotFound},
	{domain.ErrFastPassNotFound, http.StatusNotFound, codeFastPassNotFound},
	{domain.ErrEmployeeAlreadyAssigned, http.StatusConflict, codeAlreadyAssigned},
	{domain.ErrEmployeeAlreadyExists, http.StatusConflict, codeEmployeeExists},
	{domain.ErrAttractionAlreadyExists, http.StatusConflict, codeAttractionExists},
	{domain.ErrServicePlaceAlreadyExists, http.StatusConflict, codeServicePlaceExists},
	{domain.ErrShowAlreadyExists, http.StatusConflict, codeShowExists},
	{domain.ErrFastPassInvalid, http.StatusConflict, codeFastPassInvalid},
}
