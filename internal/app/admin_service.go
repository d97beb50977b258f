package app

import (
	"context"
	"time"

	"github.com/cimillas/park-operations/internal/clock"
	"github.com/cimillas/park-operations/internal/domain"
)

// CatalogueRepository is the persistence collaborator behind the park
// catalogues. Add reports an already-exists conflict on duplicate IDs;
// Get/Update/Remove report the matching not-found error when absent.
type CatalogueRepository interface {
	Catalogue

	AddEmployee(ctx context.Context, e *domain.Employee) error
	UpdateEmployee(ctx context.Context, e *domain.Employee) error
	RemoveEmployee(ctx context.Context, id string) error
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)

	AddAttraction(ctx context.Context, a *domain.Attraction) error
	UpdateAttraction(ctx context.Context, a *domain.Attraction) error
	RemoveAttraction(ctx context.Context, id string) error
	ListAttractions(ctx context.Context) ([]*domain.Attraction, error)

	AddServicePlace(ctx context.Context, p *domain.ServicePlace) error
	RemoveServicePlace(ctx context.Context, id string) error
	ListServicePlaces(ctx context.Context) ([]*domain.ServicePlace, error)

	AddShow(ctx context.Context, s *domain.Show) error
	UpdateShow(ctx context.Context, s *domain.Show) error
	RemoveShow(ctx context.Context, id string) error
	GetShow(ctx context.Context, id string) (*domain.Show, error)
	ListShows(ctx context.Context) ([]*domain.Show, error)
}

// AdminService owns the catalogue workflows: registering entities, seasonal
// and maintenance windows, tier changes and availability queries.
type AdminService struct {
	repo  CatalogueRepository
	clock clock.Clock
}

func NewAdminService(repo CatalogueRepository, clk clock.Clock) *AdminService {
	return &AdminService{
		repo:  repo,
		clock: clk,
	}
}

func (s *AdminService) AddEmployee(ctx context.Context, e *domain.Employee) error {
	if e == nil || e.ID == "" {
		return domain.ErrNilArgument
	}
	if e.Name == "" {
		return domain.ErrNameRequired
	}
	return s.repo.AddEmployee(ctx, e)
}

func (s *AdminService) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	if e == nil || e.ID == "" {
		return domain.ErrNilArgument
	}
	return s.repo.UpdateEmployee(ctx, e)
}

func (s *AdminService) RemoveEmployee(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrNilArgument
	}
	return s.repo.RemoveEmployee(ctx, id)
}

func (s *AdminService) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.ListEmployees(ctx)
}

func (s *AdminService) AddAttraction(ctx context.Context, a *domain.Attraction) error {
	if a == nil || a.ID == "" {
		return domain.ErrNilArgument
	}
	if a.Name == "" {
		return domain.ErrNameRequired
	}
	if !a.Exclusivity.IsValid() {
		return domain.ErrInvalidTier
	}
	if a.Window == nil {
		a.Window = domain.NewAvailabilityWindow()
	}
	if a.Roster == nil {
		a.Roster = domain.NewWorkplaceRoster()
	}
	return s.repo.AddAttraction(ctx, a)
}

func (s *AdminService) UpdateAttraction(ctx context.Context, a *domain.Attraction) error {
	if a == nil || a.ID == "" {
		return domain.ErrNilArgument
	}
	return s.repo.UpdateAttraction(ctx, a)
}

func (s *AdminService) RemoveAttraction(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrNilArgument
	}
	return s.repo.RemoveAttraction(ctx, id)
}

func (s *AdminService) ListAttractions(ctx context.Context) ([]*domain.Attraction, error) {
	return s.repo.ListAttractions(ctx)
}

func (s *AdminService) GetAttraction(ctx context.Context, id string) (*domain.Attraction, error) {
	if id == "" {
		return nil, domain.ErrNilArgument
	}
	return s.repo.GetAttraction(ctx, id)
}

// ChangeAttractionTier replaces the attraction's exclusivity tier after
// validating it against the closed set.
func (s *AdminService) ChangeAttractionTier(ctx context.Context, id string, tier domain.ExclusivityTier) error {
	if id == "" {
		return domain.ErrNilArgument
	}
	if !tier.IsValid() {
		return domain.ErrInvalidTier
	}
	attraction, err := s.repo.GetAttraction(ctx, id)
	if err != nil {
		return err
	}
	attraction.Exclusivity = tier
	return s.repo.UpdateAttraction(ctx, attraction)
}

// SetSeason toggles the attraction's seasonal restriction. Bounds are
// required and must be ordered when turning the season on.
func (s *AdminService) SetSeason(ctx context.Context, id string, seasonal bool, start, end time.Time) error {
	if id == "" {
		return domain.ErrNilArgument
	}
	attraction, err := s.repo.GetAttraction(ctx, id)
	if err != nil {
		return err
	}
	if err := attraction.Window.SetSeason(seasonal, start, end); err != nil {
		return err
	}
	return s.repo.UpdateAttraction(ctx, attraction)
}

// ScheduleMaintenance blacks out every day in [start, end] for the
// attraction. The attraction must exist and the range must be ordered.
func (s *AdminService) ScheduleMaintenance(ctx context.Context, id string, start, end time.Time) error {
	if id == "" {
		return domain.ErrNilArgument
	}
	attraction, err := s.repo.GetAttraction(ctx, id)
	if err != nil {
		return err
	}
	if err := attraction.Window.ScheduleMaintenance(start, end); err != nil {
		return err
	}
	return s.repo.UpdateAttraction(ctx, attraction)
}

// IsAttractionAvailable is a read-only availability query: unknown attraction
// or zero day answer false rather than an error.
func (s *AdminService) IsAttractionAvailable(ctx context.Context, id string, day time.Time) (bool, error) {
	if id == "" || day.IsZero() {
		return false, nil
	}
	attraction, err := s.repo.GetAttraction(ctx, id)
	if err != nil {
		if err == domain.ErrAttractionNotFound {
			return false, nil
		}
		return false, err
	}
	return attraction.IsAvailable(day), nil
}

func (s *AdminService) AddServicePlace(ctx context.Context, p *domain.ServicePlace) error {
	if p == nil || p.ID == "" {
		return domain.ErrNilArgument
	}
	if p.Name == "" {
		return domain.ErrNameRequired
	}
	if p.Roster == nil {
		p.Roster = domain.NewWorkplaceRoster()
	}
	return s.repo.AddServicePlace(ctx, p)
}

func (s *AdminService) RemoveServicePlace(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrNilArgument
	}
	return s.repo.RemoveServicePlace(ctx, id)
}

func (s *AdminService) ListServicePlaces(ctx context.Context) ([]*domain.ServicePlace, error) {
	return s.repo.ListServicePlaces(ctx)
}

func (s *AdminService) AddShow(ctx context.Context, show *domain.Show) error {
	if show == nil || show.ID == "" {
		return domain.ErrNilArgument
	}
	if show.Name == "" {
		return domain.ErrNameRequired
	}
	if show.Seasonal && show.SeasonStart.After(show.SeasonEnd) {
		return domain.ErrInvalidDateRange
	}
	return s.repo.AddShow(ctx, show)
}

func (s *AdminService) RemoveShow(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrNilArgument
	}
	return s.repo.RemoveShow(ctx, id)
}

func (s *AdminService) ListShows(ctx context.Context) ([]*domain.Show, error) {
	return s.repo.ListShows(ctx)
}

// AddPerformance programs a show performance for the given day.
func (s *AdminService) AddPerformance(ctx context.Context, showID string, day time.Time) error {
	if showID == "" || day.IsZero() {
		return domain.ErrNilArgument
	}
	show, err := s.repo.GetShow(ctx, showID)
	if err != nil {
		return err
	}
	show.AddPerformance(day)
	return s.repo.UpdateShow(ctx, show)
}

// CancelPerformance removes a programmed performance, reporting whether one
// existed on that day.
func (s *AdminService) CancelPerformance(ctx context.Context, showID string, day time.Time) (bool, error) {
	if showID == "" || day.IsZero() {
		return false, domain.ErrNilArgument
	}
	show, err := s.repo.GetShow(ctx, showID)
	if err != nil {
		return false, err
	}
	cancelled := show.CancelPerformance(day)
	if !cancelled {
		return false, nil
	}
	return true, s.repo.UpdateShow(ctx, show)
}

// IsShowAvailable mirrors the attraction availability query for shows.
func (s *AdminService) IsShowAvailable(ctx context.Context, showID string, day time.Time) (bool, error) {
	if showID == "" || day.IsZero() {
		return false, nil
	}
	show, err := s.repo.GetShow(ctx, showID)
	if err != nil {
		if err == domain.ErrShowNotFound {
			return false, nil
		}
		return false, err
	}
	return show.IsAvailable(day), nil
}
