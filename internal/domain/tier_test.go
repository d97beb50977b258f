package domain

import "testing"

func TestExclusivityTier_HasAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ticket     ExclusivityTier
		attraction ExclusivityTier
		want       bool
	}{
		{"familiar to familiar", TierFamiliar, TierFamiliar, true},
		{"familiar to gold", TierFamiliar, TierGold, false},
		{"familiar to diamond", TierFamiliar, TierDiamond, false},
		{"gold to familiar", TierGold, TierFamiliar, true},
		{"gold to gold", TierGold, TierGold, true},
		{"gold to diamond", TierGold, TierDiamond, false},
		{"diamond to familiar", TierDiamond, TierFamiliar, true},
		{"diamond to gold", TierDiamond, TierGold, true},
		{"diamond to diamond", TierDiamond, TierDiamond, true},
		{"unknown ticket tier", ExclusivityTier("Platinum"), TierFamiliar, false},
		{"unknown attraction tier", TierDiamond, ExclusivityTier("Platinum"), false},
		{"empty tiers", ExclusivityTier(""), ExclusivityTier(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ticket.HasAccess(tt.attraction); got != tt.want {
				t.Fatalf("HasAccess(%s, %s) = %v, want %v", tt.ticket, tt.attraction, got, tt.want)
			}
		})
	}
}

func TestExclusivityTier_IsValid(t *testing.T) {
	t.Parallel()

	for _, tier := range []ExclusivityTier{TierFamiliar, TierGold, TierDiamond} {
		if !tier.IsValid() {
			t.Fatalf("expected %s to be valid", tier)
		}
	}
	if ExclusivityTier("Platinum").IsValid() {
		t.Fatalf("expected unknown tier to be invalid")
	}
	if ExclusivityTier("").IsValid() {
		t.Fatalf("expected empty tier to be invalid")
	}
}
