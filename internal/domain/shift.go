package domain

// Shift is one of the park's named working periods per day.
type Shift string

const (
	ShiftOpening Shift = "Opening"
	ShiftClosing Shift = "Closing"
)

// IsValid reports membership in the closed shift set.
func (s Shift) IsValid() bool {
	return s == ShiftOpening || s == ShiftClosing
}
