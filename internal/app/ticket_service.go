package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cimillas/park-operations/internal/clock"
	"github.com/cimillas/park-operations/internal/domain"
)

// TicketService sells tickets, issues fast passes and answers gate checks.
// Tickets live in memory for the life of the process; the flat-file
// collaborator handles durability between runs.
type TicketService struct {
	catalogue Catalogue
	clock     clock.Clock

	mu         sync.RWMutex
	tickets    map[string]domain.AccessChecker
	fastPasses map[string]*domain.FastPass
}

func NewTicketService(catalogue Catalogue, clk clock.Clock) *TicketService {
	return &TicketService{
		catalogue:  catalogue,
		clock:      clk,
		tickets:    make(map[string]domain.AccessChecker),
		fastPasses: make(map[string]*domain.FastPass),
	}
}

type SellTicketInput struct {
	Name             string
	Count            int
	Tier             domain.ExclusivityTier
	Channel          string
	EmployeeDiscount bool
	Category         string
}

func (in SellTicketInput) validate() error {
	if in.Count <= 0 {
		return domain.ErrInvalidCount
	}
	if !in.Tier.IsValid() {
		return domain.ErrInvalidTier
	}
	return nil
}

func (s *TicketService) base(in SellTicketInput) domain.Ticket {
	return domain.Ticket{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Count:            in.Count,
		Exclusivity:      in.Tier,
		PurchaseDate:     s.clock.Now(),
		Status:           domain.TicketStatusActive,
		Channel:          in.Channel,
		EmployeeDiscount: in.EmployeeDiscount,
	}
}

// SellBasic issues a tier-only ticket with no date restriction.
func (s *TicketService) SellBasic(ctx context.Context, in SellTicketInput) (*domain.BasicTicket, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ticket := &domain.BasicTicket{
		Ticket:   s.base(in),
		Category: in.Category,
	}

	s.mu.Lock()
	s.tickets[ticket.ID] = ticket
	s.mu.Unlock()
	return ticket, nil
}

type SellSeasonalInput struct {
	SellTicketInput
	ValidFrom  time.Time
	ValidTo    time.Time
	SeasonType string
}

// SellSeasonal issues a ticket valid only inside [ValidFrom, ValidTo].
func (s *TicketService) SellSeasonal(ctx context.Context, in SellSeasonalInput) (*domain.SeasonalTicket, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.ValidFrom.IsZero() || in.ValidTo.IsZero() {
		return nil, domain.ErrNilArgument
	}
	if in.ValidFrom.After(in.ValidTo) {
		return nil, domain.ErrInvalidDateRange
	}

	ticket := &domain.SeasonalTicket{
		Ticket:     s.base(in.SellTicketInput),
		ValidFrom:  in.ValidFrom,
		ValidTo:    in.ValidTo,
		SeasonType: in.SeasonType,
		Category:   in.Category,
		Clock:      s.clock,
	}

	s.mu.Lock()
	s.tickets[ticket.ID] = ticket
	s.mu.Unlock()
	return ticket, nil
}

// SellSingle issues a single-attraction ticket bound to a catalogued
// attraction.
func (s *TicketService) SellSingle(ctx context.Context, in SellTicketInput, attractionID string) (*domain.SingleAttractionTicket, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if attractionID == "" {
		return nil, domain.ErrNilArgument
	}
	attraction, err := s.catalogue.GetAttraction(ctx, attractionID)
	if err != nil {
		return nil, err
	}

	ticket := &domain.SingleAttractionTicket{
		Ticket:     s.base(in),
		Attraction: attraction,
	}

	s.mu.Lock()
	s.tickets[ticket.ID] = ticket
	s.mu.Unlock()
	return ticket, nil
}

// IssueFastPass issues a one-time pass bound to an existing ticket and a
// single day.
func (s *TicketService) IssueFastPass(ctx context.Context, ticketID string, validDay time.Time) (*domain.FastPass, error) {
	if ticketID == "" || validDay.IsZero() {
		return nil, domain.ErrNilArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[ticketID]; !ok {
		return nil, domain.ErrTicketNotFound
	}
	pass := &domain.FastPass{
		ID:       uuid.NewString(),
		TicketID: ticketID,
		ValidDay: validDay,
	}
	s.fastPasses[pass.ID] = pass
	return pass, nil
}

// GetTicket resolves a sold ticket by ID.
func (s *TicketService) GetTicket(ctx context.Context, id string) (domain.AccessChecker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, ok := s.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return ticket, nil
}

// CheckAccess is the gate check: does the ticket grant entry to the
// attraction today. Unknown attraction answers false; unknown ticket is a
// not-found error since the gate scanned something we never sold. An
// attraction that is closed today (maintenance or out of season) denies
// entry regardless of the ticket.
func (s *TicketService) CheckAccess(ctx context.Context, ticketID, attractionID string) (bool, error) {
	s.mu.RLock()
	ticket, ok := s.tickets[ticketID]
	s.mu.RUnlock()
	if !ok {
		return false, domain.ErrTicketNotFound
	}

	attraction, err := s.catalogue.GetAttraction(ctx, attractionID)
	if err != nil {
		if err == domain.ErrAttractionNotFound {
			return false, nil
		}
		return false, err
	}
	if !attraction.IsAvailable(s.clock.Now()) {
		return false, nil
	}
	return ticket.CanAccess(attraction), nil
}

// UseTicket marks the ticket used. The transition is one-way.
func (s *TicketService) UseTicket(ctx context.Context, ticketID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[ticketID]
	if !ok {
		return domain.ErrTicketNotFound
	}
	ticket.MarkUsed()
	return nil
}

// UseFastPass consumes the pass for the given day. A pass that is already
// used or bound to another day is a conflict.
func (s *TicketService) UseFastPass(ctx context.Context, passID string, day time.Time) error {
	if passID == "" || day.IsZero() {
		return domain.ErrNilArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pass, ok := s.fastPasses[passID]
	if !ok {
		return domain.ErrFastPassNotFound
	}
	if !pass.IsValid(day) {
		return domain.ErrFastPassInvalid
	}
	pass.MarkUsed()
	return nil
}

// GetFastPass resolves an issued pass by ID.
func (s *TicketService) GetFastPass(ctx context.Context, id string) (*domain.FastPass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pass, ok := s.fastPasses[id]
	if !ok {
		return nil, domain.ErrFastPassNotFound
	}
	return pass, nil
}

// Restore preloads tickets sold in a previous run, wiring seasonal tickets
// back to the service clock.
func (s *TicketService) Restore(tickets []domain.AccessChecker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tickets {
		switch ticket := t.(type) {
		case *domain.BasicTicket:
			s.tickets[ticket.ID] = ticket
		case *domain.SeasonalTicket:
			ticket.Clock = s.clock
			s.tickets[ticket.ID] = ticket
		case *domain.SingleAttractionTicket:
			s.tickets[ticket.ID] = ticket
		}
	}
}

// Tickets snapshots every sold ticket, for the persistence collaborator.
func (s *TicketService) Tickets() []domain.AccessChecker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AccessChecker, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t)
	}
	return out
}
