package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cimillas/park-operations/internal/app"
	"github.com/cimillas/park-operations/internal/domain"
)

// TicketService is the sales and gate-check surface the transport layer
// depends on.
type TicketService interface {
	SellBasic(ctx context.Context, in app.SellTicketInput) (*domain.BasicTicket, error)
	SellSeasonal(ctx context.Context, in app.SellSeasonalInput) (*domain.SeasonalTicket, error)
	SellSingle(ctx context.Context, in app.SellTicketInput, attractionID string) (*domain.SingleAttractionTicket, error)
	IssueFastPass(ctx context.Context, ticketID string, validDay time.Time) (*domain.FastPass, error)
	GetTicket(ctx context.Context, id string) (domain.AccessChecker, error)
	CheckAccess(ctx context.Context, ticketID, attractionID string) (bool, error)
	UseTicket(ctx context.Context, ticketID string) error
	UseFastPass(ctx context.Context, passID string, day time.Time) error
	GetFastPass(ctx context.Context, id string) (*domain.FastPass, error)
}

type sellTicketRequest struct {
	Name             string `json:"name" validate:"required"`
	Count            int    `json:"count" validate:"required,gt=0"`
	Tier             string `json:"tier" validate:"required"`
	Channel          string `json:"channel,omitempty"`
	EmployeeDiscount bool   `json:"employee_discount,omitempty"`
	Category         string `json:"category,omitempty"`
}

func (r sellTicketRequest) toInput() app.SellTicketInput {
	return app.SellTicketInput{
		Name:             r.Name,
		Count:            r.Count,
		Tier:             domain.ExclusivityTier(r.Tier),
		Channel:          r.Channel,
		EmployeeDiscount: r.EmployeeDiscount,
		Category:         r.Category,
	}
}

type ticketResponse struct {
	ID               string `json:"id"`
	Kind             string `json:"kind"`
	Name             string `json:"name"`
	Count            int    `json:"count"`
	Exclusivity      string `json:"exclusivity"`
	PurchaseDate     string `json:"purchase_date"`
	Status           string `json:"status"`
	Channel          string `json:"channel,omitempty"`
	EmployeeDiscount bool   `json:"employee_discount"`
	Used             bool   `json:"used"`
	Category         string `json:"category,omitempty"`
	ValidFrom        string `json:"valid_from,omitempty"`
	ValidTo          string `json:"valid_to,omitempty"`
	SeasonType       string `json:"season_type,omitempty"`
	AttractionID     string `json:"attraction_id,omitempty"`
}

func baseTicketResponse(kind string, t domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:               t.ID,
		Kind:             kind,
		Name:             t.Name,
		Count:            t.Count,
		Exclusivity:      string(t.Exclusivity),
		PurchaseDate:     t.PurchaseDate.UTC().Format(dayLayout),
		Status:           string(t.Status),
		Channel:          t.Channel,
		EmployeeDiscount: t.EmployeeDiscount,
		Used:             t.Used,
	}
}

func toTicketResponse(checker domain.AccessChecker) (ticketResponse, bool) {
	switch t := checker.(type) {
	case *domain.BasicTicket:
		resp := baseTicketResponse("basic", t.Ticket)
		resp.Category = t.Category
		return resp, true
	case *domain.SeasonalTicket:
		resp := baseTicketResponse("seasonal", t.Ticket)
		resp.Category = t.Category
		resp.ValidFrom = t.ValidFrom.Format(dayLayout)
		resp.ValidTo = t.ValidTo.Format(dayLayout)
		resp.SeasonType = t.SeasonType
		return resp, true
	case *domain.SingleAttractionTicket:
		resp := baseTicketResponse("single_attraction", t.Ticket)
		if t.Attraction != nil {
			resp.AttractionID = t.Attraction.ID
		}
		return resp, true
	default:
		return ticketResponse{}, false
	}
}

// HandleSellBasic sells a tier-only ticket.
func HandleSellBasic(svc TicketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sellTicketRequest
		if !decodeBody(w, r, &req) {
			return
		}
		ticket, err := svc.SellBasic(r.Context(), req.toInput())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		resp := baseTicketResponse("basic", ticket.Ticket)
		resp.Category = ticket.Category
		writeJSON(w, http.StatusCreated, resp)
	}
}

type sellSeasonalRequest struct {
	sellTicketRequest
	ValidFrom  string `json:"valid_from" validate:"required"`
	ValidTo    string `json:"valid_to" validate:"required"`
	SeasonType string `json:"season_type,omitempty"`
}

// HandleSellSeasonal sells a date-windowed ticket.
func HandleSellSeasonal(svc TicketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sellSeasonalRequest
		if !decodeBody(w, r, &req) {
			return
		}
		from, ok := parseDay(req.ValidFrom)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "valid_from must be formatted as 2006-01-02")
			return
		}
		to, ok := parseDay(req.ValidTo)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "valid_to must be formatted as 2006-01-02")
			return
		}

		ticket, err := svc.SellSeasonal(r.Context(), app.SellSeasonalInput{
			SellTicketInput: req.toInput(),
			ValidFrom:       from,
			ValidTo:         to,
			SeasonType:      req.SeasonType,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		resp := baseTicketResponse("seasonal", ticket.Ticket)
		resp.Category = ticket.Category
		resp.ValidFrom = ticket.ValidFrom.Format(dayLayout)
		resp.ValidTo = ticket.ValidTo.Format(dayLayout)
		resp.SeasonType = ticket.SeasonType
		writeJSON(w, http.StatusCreated, resp)
	}
}

type sellSingleRequest struct {
	sellTicketRequest
	AttractionID string `json:"attraction_id" validate:"required"`
}

// HandleSellSingle sells a single-attraction ticket.
func HandleSellSingle(svc TicketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sellSingleRequest
		if !decodeBody(w, r, &req) {
			return
		}
		ticket, err := svc.SellSingle(r.Context(), req.toInput(), req.AttractionID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		resp := baseTicketResponse("single_attraction", ticket.Ticket)
		if ticket.Attraction != nil {
			resp.AttractionID = ticket.Attraction.ID
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// HandleGetTicket fetches one ticket by ID.
func HandleGetTicket(svc TicketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticket, err := svc.GetTicket(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeDomainError(w, err)
			return
		}
		resp, ok := toTicketResponse(ticket)
		if !ok {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleUseTicket marks a ticket consumed at the gate.
func HandleUseTicket(svc TicketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.UseTicket(r.Context(), mux.Vars(r)["id"]); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleCheckAccess answers whether a ticket admits its holder to an
// attraction.
func HandleCheckAccess(svc TicketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attractionID := r.URL.Query().Get("attraction_id")
		if attractionID == "" {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "attraction_id is required")
			return
		}
		granted, err := svc.CheckAccess(r.Context(), mux.Vars(r)["id"], attractionID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"granted": granted})
	}
}

type fastPassRequest struct {
	ValidDay string `json:"valid_day" validate:"required"`
}

type fastPassResponse struct {
	ID       string `json:"id"`
	TicketID string `json:"ticket_id"`
	ValidDay string `json:"valid_day"`
	Used     bool   `json:"used"`
}

func toFastPassResponse(p *domain.FastPass) fastPassResponse {
	return fastPassResponse{
		ID:       p.ID,
		TicketID: p.TicketID,
		ValidDay: p.ValidDay.Format(dayLayout),
		Used:     p.Used,
	}
}

// HandleIssueFastPass attaches a single-day fast pass to a ticket.
func HandleIssueFastPass(svc TicketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fastPassRequest
		if !decodeBody(w, r, &req) {
			return
		}
		day, ok := parseDay(req.ValidDay)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "valid_day must be formatted as 2006-01-02")
			return
		}
		pass, err := svc.IssueFastPass(r.Context(), mux.Vars(r)["id"], day)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toFastPassResponse(pass))
	}
}

// HandleGetFastPass fetches one fast pass by ID.
func HandleGetFastPass(svc TicketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pass, err := svc.GetFastPass(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFastPassResponse(pass))
	}
}

type useFastPassRequest struct {
	Day string `json:"day" validate:"required"`
}

// HandleUseFastPass redeems a fast pass on the given day.
func HandleUseFastPass(svc TicketService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req useFastPassRequest
		if !decodeBody(w, r, &req) {
			return
		}
		day, ok := parseDay(req.Day)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "day must be formatted as 2006-01-02")
			return
		}
		if err := svc.UseFastPass(r.Context(), mux.Vars(r)["id"], day); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
