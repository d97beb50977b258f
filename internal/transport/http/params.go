package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/cimillas/park-operations/internal/domain"
)

const dayLayout = "2006-01-02"

var validate = validator.New()

// decodeBody decodes and validates a JSON request body. It writes the error
// response itself and reports whether decoding succeeded.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeMissingRequiredField, err.Error())
		return false
	}
	return true
}

func parseDay(value string) (time.Time, bool) {
	day, err := time.Parse(dayLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return day.UTC(), true
}

// slotParams reads the day and shift query parameters shared by the staffing
// endpoints. It writes the error response itself on bad input.
func slotParams(w http.ResponseWriter, r *http.Request) (time.Time, domain.Shift, bool) {
	day, ok := parseDay(r.URL.Query().Get("day"))
	if !ok {
		writeError(w, http.StatusBadRequest, codeInvalidDay, "day must be formatted as 2006-01-02")
		return time.Time{}, "", false
	}
	shift := domain.Shift(r.URL.Query().Get("shift"))
	if !shift.IsValid() {
		writeError(w, http.StatusBadRequest, codeInvalidShift, domain.ErrInvalidShift.Error())
		return time.Time{}, "", false
	}
	return day, shift, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
