package domain

// ServicePlaceKind distinguishes the park's non-attraction facilities.
type ServicePlaceKind string

const (
	ServicePlaceCafeteria   ServicePlaceKind = "cafeteria"
	ServicePlaceShop        ServicePlaceKind = "shop"
	ServicePlaceTicketBooth ServicePlaceKind = "ticket_booth"
)

// ServicePlace is a workplace that sells or serves rather than entertains.
// Cafeterias carry a menu and always require a cook on shift.
type ServicePlace struct {
	ID       string
	Name     string
	Location string
	Kind     ServicePlaceKind
	Capacity int
	Menu     []string

	Roster *WorkplaceRoster
}

// NewServicePlace returns a service place with a fresh roster.
func NewServicePlace(id, name string, kind ServicePlaceKind) *ServicePlace {
	return &ServicePlace{
		ID:     id,
		Name:   name,
		Kind:   kind,
		Roster: NewWorkplaceRoster(),
	}
}

// RequiresCook reports whether the place needs a certified cook per shift.
func (p *ServicePlace) RequiresCook() bool {
	return p.Kind == ServicePlaceCafeteria
}

// AddDish appends a dish to the menu. Adding an existing dish is a success.
func (p *ServicePlace) AddDish(dish string) bool {
	if dish == "" {
		return false
	}
	for _, d := range p.Menu {
		if d == dish {
			return true
		}
	}
	p.Menu = append(p.Menu, dish)
	return true
}

// RemoveDish deletes a dish from the menu, reporting whether it was present.
func (p *ServicePlace) RemoveDish(dish string) bool {
	for i, d := range p.Menu {
		if d == dish {
			p.Menu = append(p.Menu[:i], p.Menu[i+1:]...)
			return true
		}
	}
	return false
}
