package memory

import (
	"context"
	"sync"

	"github.com/cimillas/park-operations/internal/domain"
)

// Catalogue keeps the park's entities in memory. Returned pointers are shared
// with callers: the staffing engine writes facility rosters through them.
type Catalogue struct {
	mu            sync.RWMutex
	employees     map[string]*domain.Employee
	attractions   map[string]*domain.Attraction
	servicePlaces map[string]*domain.ServicePlace
	shows         map[string]*domain.Show
}

func NewCatalogue() *Catalogue {
	return &Catalogue{
		employees:     make(map[string]*domain.Employee),
		attractions:   make(map[string]*domain.Attraction),
		servicePlaces: make(map[string]*domain.ServicePlace),
		shows:         make(map[string]*domain.Show),
	}
}

func (c *Catalogue) GetEmployee(_ context.Context, id string) (*domain.Employee, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return e, nil
}

func (c *Catalogue) AddEmployee(_ context.Context, e *domain.Employee) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.employees[e.ID]; exists {
		return domain.ErrEmployeeAlreadyExists
	}
	c.employees[e.ID] = e
	return nil
}

func (c *Catalogue) UpdateEmployee(_ context.Context, e *domain.Employee) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.employees[e.ID]; !exists {
		return domain.ErrEmployeeNotFound
	}
	c.employees[e.ID] = e
	return nil
}

func (c *Catalogue) RemoveEmployee(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.employees[id]; !exists {
		return domain.ErrEmployeeNotFound
	}
	delete(c.employees, id)
	return nil
}

func (c *Catalogue) ListEmployees(_ context.Context) ([]*domain.Employee, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Employee, 0, len(c.employees))
	for _, e := range c.employees {
		out = append(out, e)
	}
	return out, nil
}

func (c *Catalogue) GetAttraction(_ context.Context, id string) (*domain.Attraction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.attractions[id]
	if !ok {
		return nil, domain.ErrAttractionNotFound
	}
	return a, nil
}

func (c *Catalogue) AddAttraction(_ context.Context, a *domain.Attraction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.attractions[a.ID]; exists {
		return domain.ErrAttractionAlreadyExists
	}
	c.attractions[a.ID] = a
	return nil
}

func (c *Catalogue) UpdateAttraction(_ context.Context, a *domain.Attraction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.attractions[a.ID]; !exists {
		return domain.ErrAttractionNotFound
	}
	c.attractions[a.ID] = a
	return nil
}

func (c *Catalogue) RemoveAttraction(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.attractions[id]; !exists {
		return domain.ErrAttractionNotFound
	}
	delete(c.attractions, id)
	return nil
}

func (c *Catalogue) ListAttractions(_ context.Context) ([]*domain.Attraction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Attraction, 0, len(c.attractions))
	for _, a := range c.attractions {
		out = append(out, a)
	}
	return out, nil
}

func (c *Catalogue) GetServicePlace(_ context.Context, id string) (*domain.ServicePlace, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.servicePlaces[id]
	if !ok {
		return nil, domain.ErrServicePlaceNotFound
	}
	return p, nil
}

func (c *Catalogue) AddServicePlace(_ context.Context, p *domain.ServicePlace) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.servicePlaces[p.ID]; exists {
		return domain.ErrServicePlaceAlreadyExists
	}
	c.servicePlaces[p.ID] = p
	return nil
}

func (c *Catalogue) RemoveServicePlace(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.servicePlaces[id]; !exists {
		return domain.ErrServicePlaceNotFound
	}
	delete(c.servicePlaces, id)
	return nil
}

func (c *Catalogue) ListServicePlaces(_ context.Context) ([]*domain.ServicePlace, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.ServicePlace, 0, len(c.servicePlaces))
	for _, p := range c.servicePlaces {
		out = append(out, p)
	}
	return out, nil
}

func (c *Catalogue) GetShow(_ context.Context, id string) (*domain.Show, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.shows[id]
	if !ok {
		return nil, domain.ErrShowNotFound
	}
	return s, nil
}

func (c *Catalogue) AddShow(_ context.Context, s *domain.Show) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.shows[s.ID]; exists {
		return domain.ErrShowAlreadyExists
	}
	c.shows[s.ID] = s
	return nil
}

func (c *Catalogue) UpdateShow(_ context.Context, s *domain.Show) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.shows[s.ID]; !exists {
		return domain.ErrShowNotFound
	}
	c.shows[s.ID] = s
	return nil
}

func (c *Catalogue) RemoveShow(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.shows[id]; !exists {
		return domain.ErrShowNotFound
	}
	delete(c.shows, id)
	return nil
}

func (c *Catalogue) ListShows(_ context.Context) ([]*domain.Show, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Show, 0, len(c.shows))
	for _, s := range c.shows {
		out = append(out, s)
	}
	return out, nil
}
