package http

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cimillas/park-operations/internal/domain"
)

func TestHandleAdminEmployees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "create",
			method:         http.MethodPost,
			body:           `{"name":"Maria","role":"cook","certified":true,"certified_from":"2025-01-01"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"name":"Maria"`,
		},
		{
			name:           "create mints id",
			method:         http.MethodPost,
			body:           `{"name":"Jorge","role":"regular"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"id":"`,
		},
		{
			name:           "missing name",
			method:         http.MethodPost,
			body:           `{"role":"cook"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad email",
			method:         http.MethodPost,
			body:           `{"name":"Maria","role":"cook","email":"not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad certified date",
			method:         http.MethodPost,
			body:           `{"name":"Maria","role":"cook","certified_from":"Jan 1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate",
			method:         http.MethodPost,
			body:           `{"id":"emp-1","name":"Maria","role":"cook"}`,
			serviceErr:     domain.ErrEmployeeAlreadyExists,
			expectedStatus: http.StatusConflict,
			expectedSubstr: "employee_already_exists",
		},
		{
			name:           "list empty",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectedSubstr: "[]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &fakeAdmin{err: tt.serviceErr}
			rec := routeRequest(t, &fakeStaffing{}, svc, &fakeTickets{}, tt.method, "/admin/employees", tt.body)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleAdminEmployee(t *testing.T) {
	t.Parallel()

	t.Run("update keeps path id", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAdmin{}
		body := `{"id":"other","name":"Maria","role":"cook"}`
		rec := routeRequest(t, &fakeStaffing{}, svc, &fakeTickets{}, http.MethodPut, "/admin/employees/emp-1", body)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"id":"emp-1"`) {
			t.Fatalf("expected path id to win, got %q", rec.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		rec := routeRequest(t, &fakeStaffing{}, &fakeAdmin{}, &fakeTickets{}, http.MethodDelete, "/admin/employees/emp-1", "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAdmin{err: domain.ErrEmployeeNotFound}
		rec := routeRequest(t, &fakeStaffing{}, svc, &fakeTickets{}, http.MethodDelete, "/admin/employees/ghost", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestHandleAdminAttractions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "create",
			body:           `{"id":"attr-1","name":"Dragon Coaster","kind":"mechanical","exclusivity":"Gold","required_staff":2,"capacity":40,"risk":"high"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"exclusivity":"Gold"`,
		},
		{
			name:           "bad kind",
			body:           `{"name":"Dragon Coaster","kind":"virtual","exclusivity":"Gold","required_staff":2,"capacity":40}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid tier",
			body:           `{"name":"Dragon Coaster","kind":"mechanical","exclusivity":"Platinum","required_staff":2,"capacity":40}`,
			serviceErr:     domain.ErrInvalidTier,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_tier",
		},
		{
			name:           "duplicate",
			body:           `{"id":"attr-1","name":"Dragon Coaster","kind":"mechanical","exclusivity":"Gold","required_staff":2,"capacity":40}`,
			serviceErr:     domain.ErrAttractionAlreadyExists,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &fakeAdmin{err: tt.serviceErr}
			rec := routeRequest(t, &fakeStaffing{}, svc, &fakeTickets{}, http.MethodPost, "/admin/attractions", tt.body)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleAdminAttraction_GetIncludesWindow(t *testing.T) {
	t.Parallel()

	attraction := domain.NewAttraction("attr-1", "Dragon Coaster", domain.AttractionMechanical, domain.TierGold, 2)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	if err := attraction.Window.SetSeason(true, start, end); err != nil {
		t.Fatalf("set season: %v", err)
	}
	if err := attraction.Window.ScheduleMaintenance(start, start); err != nil {
		t.Fatalf("schedule maintenance: %v", err)
	}

	svc := &fakeAdmin{attraction: attraction}
	rec := routeRequest(t, &fakeStaffing{}, svc, &fakeTickets{}, http.MethodGet, "/admin/attractions/attr-1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"seasonal":true`, `"season_start":"2025-06-01"`, `"blackout_days":["2025-06-01"]`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected response to contain %q, got %q", want, body)
		}
	}
}

func TestHandleSetSeason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "enable",
			body:           `{"seasonal":true,"start":"2025-06-01","end":"2025-08-31"}`,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "disable without dates",
			body:           `{"seasonal":false}`,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "enable without dates",
			body:           `{"seasonal":true}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := routeRequest(t, &fakeStaffing{}, &fakeAdmin{}, &fakeTickets{}, http.MethodPut, "/admin/attractions/attr-1/season", tt.body)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestHandleScheduleMaintenance(t *testing.T) {
	t.Parallel()

	t.Run("scheduled", func(t *testing.T) {
		t.Parallel()
		body := `{"start":"2025-03-01","end":"2025-03-07"}`
		rec := routeRequest(t, &fakeStaffing{}, &fakeAdmin{}, &fakeTickets{}, http.MethodPost, "/admin/attractions/attr-1/maintenance", body)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
	})

	t.Run("reversed range", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAdmin{err: domain.ErrInvalidDateRange}
		body := `{"start":"2025-03-07","end":"2025-03-01"}`
		rec := routeRequest(t, &fakeStaffing{}, svc, &fakeTickets{}, http.MethodPost, "/admin/attractions/attr-1/maintenance", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "invalid_date_range") {
			t.Fatalf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("missing end", func(t *testing.T) {
		t.Parallel()
		rec := routeRequest(t, &fakeStaffing{}, &fakeAdmin{}, &fakeTickets{}, http.MethodPost, "/admin/attractions/attr-1/maintenance", `{"start":"2025-03-01"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHandleAttractionAvailability(t *testing.T) {
	t.Parallel()

	t.Run("available", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAdmin{available: true}
		rec := routeRequest(t, &fakeStaffing{}, svc, &fakeTickets{}, http.MethodGet, "/admin/attractions/attr-1/availability?day=2025-07-01", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"available":true`) {
			t.Fatalf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("missing day", func(t *testing.T) {
		t.Parallel()
		rec := routeRequest(t, &fakeStaffing{}, &fakeAdmin{}, &fakeTickets{}, http.MethodGet, "/admin/attractions/attr-1/availability", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHandlePerformances(t *testing.T) {
	t.Parallel()

	t.Run("add", func(t *testing.T) {
		t.Parallel()
		rec := routeRequest(t, &fakeStaffing{}, &fakeAdmin{}, &fakeTickets{}, http.MethodPost, "/admin/shows/show-1/performances", `{"day":"2025-07-04"}`)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAdmin{cancelled: true}
		rec := routeRequest(t, &fakeStaffing{}, svc, &fakeTickets{}, http.MethodDelete, "/admin/shows/show-1/performances?day=2025-07-04", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"cancelled":true`) {
			t.Fatalf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("unknown show", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAdmin{err: domain.ErrShowNotFound}
		rec := routeRequest(t, &fakeStaffing{}, svc, &fakeTickets{}, http.MethodPost, "/admin/shows/ghost/performances", `{"day":"2025-07-04"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}
