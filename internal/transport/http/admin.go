package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cimillas/park-operations/internal/domain"
)

// AdminService is the catalogue surface the transport layer depends on.
type AdminService interface {
	AddEmployee(ctx context.Context, e *domain.Employee) error
	UpdateEmployee(ctx context.Context, e *domain.Employee) error
	RemoveEmployee(ctx context.Context, id string) error
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)

	AddAttraction(ctx context.Context, a *domain.Attraction) error
	RemoveAttraction(ctx context.Context, id string) error
	ListAttractions(ctx context.Context) ([]*domain.Attraction, error)
	GetAttraction(ctx context.Context, id string) (*domain.Attraction, error)
	ChangeAttractionTier(ctx context.Context, id string, tier domain.ExclusivityTier) error
	SetSeason(ctx context.Context, id string, seasonal bool, start, end time.Time) error
	ScheduleMaintenance(ctx context.Context, id string, start, end time.Time) error
	IsAttractionAvailable(ctx context.Context, id string, day time.Time) (bool, error)

	AddServicePlace(ctx context.Context, p *domain.ServicePlace) error
	RemoveServicePlace(ctx context.Context, id string) error
	ListServicePlaces(ctx context.Context) ([]*domain.ServicePlace, error)

	AddShow(ctx context.Context, show *domain.Show) error
	RemoveShow(ctx context.Context, id string) error
	ListShows(ctx context.Context) ([]*domain.Show, error)
	AddPerformance(ctx context.Context, showID string, day time.Time) error
	CancelPerformance(ctx context.Context, showID string, day time.Time) (bool, error)
	IsShowAvailable(ctx context.Context, showID string, day time.Time) (bool, error)
}

type employeeRequest struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Role           string `json:"role" validate:"required"`
	GeneralService bool   `json:"general_service,omitempty"`
	ExtraHours     bool   `json:"extra_hours,omitempty"`
	Certified      bool   `json:"certified,omitempty"`
	CertifiedFrom  string `json:"certified_from,omitempty"`
	CertifiedUntil string `json:"certified_until,omitempty"`
}

type employeeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role"`
	GeneralService bool   `json:"general_service"`
	ExtraHours     bool   `json:"extra_hours"`
	Certified      bool   `json:"certified"`
	CertifiedFrom  string `json:"certified_from,omitempty"`
	CertifiedUntil string `json:"certified_until,omitempty"`
}

func (r employeeRequest) toDomain(w http.ResponseWriter) (*domain.Employee, bool) {
	from, to := time.Time{}, time.Time{}
	if r.CertifiedFrom != "" {
		var ok bool
		if from, ok = parseDay(r.CertifiedFrom); !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "certified_from must be formatted as 2006-01-02")
			return nil, false
		}
	}
	if r.CertifiedUntil != "" {
		var ok bool
		if to, ok = parseDay(r.CertifiedUntil); !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "certified_until must be formatted as 2006-01-02")
			return nil, false
		}
	}
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &domain.Employee{
		ID:             id,
		Name:           r.Name,
		Email:          r.Email,
		Role:           domain.EmployeeRole(r.Role),
		GeneralService: r.GeneralService,
		ExtraHours:     r.ExtraHours,
		Certified:      r.Certified,
		CertifiedFrom:  from,
		CertifiedUntil: to,
	}, true
}

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	resp := employeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		Role:           string(e.Role),
		GeneralService: e.GeneralService,
		ExtraHours:     e.ExtraHours,
		Certified:      e.Certified,
	}
	if !e.CertifiedFrom.IsZero() {
		resp.CertifiedFrom = e.CertifiedFrom.Format(dayLayout)
	}
	if !e.CertifiedUntil.IsZero() {
		resp.CertifiedUntil = e.CertifiedUntil.Format(dayLayout)
	}
	return resp
}

// HandleAdminEmployees creates and lists employees.
func HandleAdminEmployees(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			employees, err := svc.ListEmployees(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := make([]employeeResponse, 0, len(employees))
			for _, e := range employees {
				resp = append(resp, toEmployeeResponse(e))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req employeeRequest
			if !decodeBody(w, r, &req) {
				return
			}
			employee, ok := req.toDomain(w)
			if !ok {
				return
			}
			if err := svc.AddEmployee(r.Context(), employee); err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, toEmployeeResponse(employee))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleAdminEmployee updates or removes a single employee.
func HandleAdminEmployee(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		switch r.Method {
		case http.MethodPut:
			var req employeeRequest
			if !decodeBody(w, r, &req) {
				return
			}
			req.ID = id
			employee, ok := req.toDomain(w)
			if !ok {
				return
			}
			if err := svc.UpdateEmployee(r.Context(), employee); err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toEmployeeResponse(employee))
		case http.MethodDelete:
			if err := svc.RemoveEmployee(r.Context(), id); err != nil {
				writeDomainError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

type attractionRequest struct {
	ID                 string   `json:"id,omitempty"`
	Name               string   `json:"name" validate:"required"`
	Kind               string   `json:"kind" validate:"required,oneof=mechanical cultural"`
	Location           string   `json:"location,omitempty"`
	ClimateRestriction string   `json:"climate_restriction,omitempty"`
	Exclusivity        string   `json:"exclusivity" validate:"required"`
	RequiredStaff      int      `json:"required_staff" validate:"gte=0"`
	Capacity           int      `json:"capacity" validate:"gte=0"`
	Risk               string   `json:"risk,omitempty"`
	MinHeightCM        float64  `json:"min_height_cm,omitempty"`
	MaxHeightCM        float64  `json:"max_height_cm,omitempty"`
	MinWeightKG        float64  `json:"min_weight_kg,omitempty"`
	MaxWeightKG        float64  `json:"max_weight_kg,omitempty"`
	HealthRestrictions []string `json:"health_restrictions,omitempty"`
	MinAge             int      `json:"min_age,omitempty"`
}

type attractionResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Kind               string   `json:"kind"`
	Location           string   `json:"location,omitempty"`
	ClimateRestriction string   `json:"climate_restriction,omitempty"`
	Exclusivity        string   `json:"exclusivity"`
	RequiredStaff      int      `json:"required_staff"`
	Capacity           int      `json:"capacity"`
	Risk               string   `json:"risk,omitempty"`
	MinHeightCM        float64  `json:"min_height_cm,omitempty"`
	MaxHeightCM        float64  `json:"max_height_cm,omitempty"`
	MinWeightKG        float64  `json:"min_weight_kg,omitempty"`
	MaxWeightKG        float64  `json:"max_weight_kg,omitempty"`
	HealthRestrictions []string `json:"health_restrictions,omitempty"`
	MinAge             int      `json:"min_age,omitempty"`
	Seasonal           bool     `json:"seasonal"`
	SeasonStart        string   `json:"season_start,omitempty"`
	SeasonEnd          string   `json:"season_end,omitempty"`
	BlackoutDays       []string `json:"blackout_days,omitempty"`
}

func toAttractionResponse(a *domain.Attraction) attractionResponse {
	resp := attractionResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Kind:               string(a.Kind),
		Location:           a.Location,
		ClimateRestriction: a.ClimateRestriction,
		Exclusivity:        string(a.Exclusivity),
		RequiredStaff:      a.RequiredStaff,
		Capacity:           a.Capacity,
		Risk:               string(a.Risk),
		MinHeightCM:        a.MinHeightCM,
		MaxHeightCM:        a.MaxHeightCM,
		MinWeightKG:        a.MinWeightKG,
		MaxWeightKG:        a.MaxWeightKG,
		HealthRestrictions: a.HealthRestrictions,
		MinAge:             a.MinAge,
	}
	if a.Window != nil {
		resp.Seasonal = a.Window.Seasonal()
		start, end := a.Window.SeasonRange()
		if !start.IsZero() {
			resp.SeasonStart = start.Format(dayLayout)
		}
		if !end.IsZero() {
			resp.SeasonEnd = end.Format(dayLayout)
		}
		for _, d := range a.Window.BlackoutDays() {
			resp.BlackoutDays = append(resp.BlackoutDays, d.Format(dayLayout))
		}
	}
	return resp
}

// HandleAdminAttractions creates and lists attractions.
func HandleAdminAttractions(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			attractions, err := svc.ListAttractions(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := make([]attractionResponse, 0, len(attractions))
			for _, a := range attractions {
				resp = append(resp, toAttractionResponse(a))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req attractionRequest
			if !decodeBody(w, r, &req) {
				return
			}
			id := req.ID
			if id == "" {
				id = uuid.NewString()
			}
			attraction := &domain.Attraction{
				ID:                 id,
				Name:               req.Name,
				Kind:               domain.AttractionKind(req.Kind),
				Location:           req.Location,
				ClimateRestriction: req.ClimateRestriction,
				Exclusivity:        domain.ExclusivityTier(req.Exclusivity),
				RequiredStaff:      req.RequiredStaff,
				Capacity:           req.Capacity,
				Risk:               domain.RiskLevel(req.Risk),
				MinHeightCM:        req.MinHeightCM,
				MaxHeightCM:        req.MaxHeightCM,
				MinWeightKG:        req.MinWeightKG,
				MaxWeightKG:        req.MaxWeightKG,
				HealthRestrictions: req.HealthRestrictions,
				MinAge:             req.MinAge,
			}
			if err := svc.AddAttraction(r.Context(), attraction); err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, toAttractionResponse(attraction))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleAdminAttraction fetches or removes a single attraction.
func HandleAdminAttraction(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		switch r.Method {
		case http.MethodGet:
			attraction, err := svc.GetAttraction(r.Context(), id)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toAttractionResponse(attraction))
		case http.MethodDelete:
			if err := svc.RemoveAttraction(r.Context(), id); err != nil {
				writeDomainError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

type tierRequest struct {
	Tier string `json:"tier" validate:"required"`
}

// HandleChangeTier replaces an attraction's exclusivity tier.
func HandleChangeTier(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		var req tierRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := svc.ChangeAttractionTier(r.Context(), id, domain.ExclusivityTier(req.Tier)); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type seasonRequest struct {
	Seasonal bool   `json:"seasonal"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
}

// HandleSetSeason sets or clears an attraction's operating season.
func HandleSetSeason(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		var req seasonRequest
		if !decodeBody(w, r, &req) {
			return
		}
		start, end := time.Time{}, time.Time{}
		if req.Seasonal {
			var ok bool
			if start, ok = parseDay(req.Start); !ok {
				writeError(w, http.StatusBadRequest, codeInvalidDay, "start must be formatted as 2006-01-02")
				return
			}
			if end, ok = parseDay(req.End); !ok {
				writeError(w, http.StatusBadRequest, codeInvalidDay, "end must be formatted as 2006-01-02")
				return
			}
		}
		if err := svc.SetSeason(r.Context(), id, req.Seasonal, start, end); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type maintenanceRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// HandleScheduleMaintenance blacks out a closed range of days.
func HandleScheduleMaintenance(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		var req maintenanceRequest
		if !decodeBody(w, r, &req) {
			return
		}
		start, ok := parseDay(req.Start)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "start must be formatted as 2006-01-02")
			return
		}
		end, ok := parseDay(req.End)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "end must be formatted as 2006-01-02")
			return
		}
		if err := svc.ScheduleMaintenance(r.Context(), id, start, end); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleAttractionAvailability answers the day-availability query.
func HandleAttractionAvailability(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		day, ok := parseDay(r.URL.Query().Get("day"))
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "day must be formatted as 2006-01-02")
			return
		}
		available, err := svc.IsAttractionAvailable(r.Context(), id, day)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"available": available})
	}
}

type servicePlaceRequest struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name" validate:"required"`
	Location string   `json:"location,omitempty"`
	Kind     string   `json:"kind" validate:"required,oneof=cafeteria shop ticket_booth"`
	Capacity int      `json:"capacity,omitempty" validate:"gte=0"`
	Menu     []string `json:"menu,omitempty"`
}

type servicePlaceResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location,omitempty"`
	Kind     string   `json:"kind"`
	Capacity int      `json:"capacity"`
	Menu     []string `json:"menu,omitempty"`
}

func toServicePlaceResponse(p *domain.ServicePlace) servicePlaceResponse {
	return servicePlaceResponse{
		ID:       p.ID,
		Name:     p.Name,
		Location: p.Location,
		Kind:     string(p.Kind),
		Capacity: p.Capacity,
		Menu:     p.Menu,
	}
}

// HandleAdminServicePlaces creates and lists service places.
func HandleAdminServicePlaces(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			places, err := svc.ListServicePlaces(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := make([]servicePlaceResponse, 0, len(places))
			for _, p := range places {
				resp = append(resp, toServicePlaceResponse(p))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req servicePlaceRequest
			if !decodeBody(w, r, &req) {
				return
			}
			id := req.ID
			if id == "" {
				id = uuid.NewString()
			}
			place := &domain.ServicePlace{
				ID:       id,
				Name:     req.Name,
				Location: req.Location,
				Kind:     domain.ServicePlaceKind(req.Kind),
				Capacity: req.Capacity,
				Menu:     req.Menu,
			}
			if err := svc.AddServicePlace(r.Context(), place); err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, toServicePlaceResponse(place))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleAdminServicePlace removes a single service place.
func HandleAdminServicePlace(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := svc.RemoveServicePlace(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type showRequest struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name" validate:"required"`
	Duration           string `json:"duration,omitempty"`
	Schedule           string `json:"schedule,omitempty"`
	Capacity           int    `json:"capacity,omitempty" validate:"gte=0"`
	ClimateRestriction string `json:"climate_restriction,omitempty"`
	Seasonal           bool   `json:"seasonal,omitempty"`
	SeasonStart        string `json:"season_start,omitempty"`
	SeasonEnd          string `json:"season_end,omitempty"`
}

type showResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Duration     string   `json:"duration,omitempty"`
	Schedule     string   `json:"schedule,omitempty"`
	Capacity     int      `json:"capacity"`
	Seasonal     bool     `json:"seasonal"`
	SeasonStart  string   `json:"season_start,omitempty"`
	SeasonEnd    string   `json:"season_end,omitempty"`
	Performances []string `json:"performances,omitempty"`
}

func toShowResponse(s *domain.Show) showResponse {
	resp := showResponse{
		ID:       s.ID,
		Name:     s.Name,
		Duration: s.Duration,
		Schedule: s.Schedule,
		Capacity: s.Capacity,
		Seasonal: s.Seasonal,
	}
	if !s.SeasonStart.IsZero() {
		resp.SeasonStart = s.SeasonStart.Format(dayLayout)
	}
	if !s.SeasonEnd.IsZero() {
		resp.SeasonEnd = s.SeasonEnd.Format(dayLayout)
	}
	for _, p := range s.Performances() {
		resp.Performances = append(resp.Performances, p.Format(dayLayout))
	}
	return resp
}

// HandleAdminShows creates and lists shows.
func HandleAdminShows(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			shows, err := svc.ListShows(r.Context())
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp := make([]showResponse, 0, len(shows))
			for _, s := range shows {
				resp = append(resp, toShowResponse(s))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req showRequest
			if !decodeBody(w, r, &req) {
				return
			}
			start, end := time.Time{}, time.Time{}
			if req.Seasonal {
				var ok bool
				if start, ok = parseDay(req.SeasonStart); !ok {
					writeError(w, http.StatusBadRequest, codeInvalidDay, "season_start must be formatted as 2006-01-02")
					return
				}
				if end, ok = parseDay(req.SeasonEnd); !ok {
					writeError(w, http.StatusBadRequest, codeInvalidDay, "season_end must be formatted as 2006-01-02")
					return
				}
			}
			id := req.ID
			if id == "" {
				id = uuid.NewString()
			}
			show := &domain.Show{
				ID:                 id,
				Name:               req.Name,
				Duration:           req.Duration,
				Schedule:           req.Schedule,
				Capacity:           req.Capacity,
				ClimateRestriction: req.ClimateRestriction,
				Seasonal:           req.Seasonal,
				SeasonStart:        start,
				SeasonEnd:          end,
			}
			if err := svc.AddShow(r.Context(), show); err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, toShowResponse(show))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleAdminShow removes a single show.
func HandleAdminShow(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := svc.RemoveShow(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type performanceRequest struct {
	Day string `json:"day" validate:"required"`
}

// HandlePerformances programs or cancels a show performance.
func HandlePerformances(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		switch r.Method {
		case http.MethodPost:
			var req performanceRequest
			if !decodeBody(w, r, &req) {
				return
			}
			day, ok := parseDay(req.Day)
			if !ok {
				writeError(w, http.StatusBadRequest, codeInvalidDay, "day must be formatted as 2006-01-02")
				return
			}
			if err := svc.AddPerformance(r.Context(), id, day); err != nil {
				writeDomainError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		case http.MethodDelete:
			day, ok := parseDay(r.URL.Query().Get("day"))
			if !ok {
				writeError(w, http.StatusBadRequest, codeInvalidDay, "day must be formatted as 2006-01-02")
				return
			}
			cancelled, err := svc.CancelPerformance(r.Context(), id, day)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]bool{"cancelled": cancelled})
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleShowAvailability answers the day-availability query for a show.
func HandleShowAvailability(svc AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		day, ok := parseDay(r.URL.Query().Get("day"))
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "day must be formatted as 2006-01-02")
			return
		}
		available, err := svc.IsShowAvailable(r.Context(), id, day)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"available": available})
	}
}
