package domain

// ExclusivityTier ranks tickets and attractions. The order is total:
// Familiar < Gold < Diamond.
type ExclusivityTier string

const (
	TierFamiliar ExclusivityTier = "Familiar"
	TierGold     ExclusivityTier = "Gold"
	TierDiamond  ExclusivityTier = "Diamond"
)

// IsValid reports membership in the closed tier set.
func (t ExclusivityTier) IsValid() bool {
	return t == TierFamiliar || t == TierGold || t == TierDiamond
}

func (t ExclusivityTier) rank() int {
	switch t {
	case TierFamiliar:
		return 0
	case TierGold:
		return 1
	case TierDiamond:
		return 2
	}
	return -1
}

// HasAccess reports whether a ticket of tier t may enter an attraction of
// tier attraction. Diamond sees everything, Gold sees Gold and Familiar,
// Familiar sees only Familiar. Unknown tiers never grant access.
func (t ExclusivityTier) HasAccess(attraction ExclusivityTier) bool {
	tr, ar := t.rank(), attraction.rank()
	if tr < 0 || ar < 0 {
		return false
	}
	return tr >= ar
}
