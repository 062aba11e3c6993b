package types

import "testing"

func TestTierRankOrdering(t *testing.T) {
	if !(TierHigh.Rank() < TierMedium.Rank() && TierMedium.Rank() < TierLow.Rank()) {
		t.Errorf("tier ranks out of order: High=%d Medium=%d Low=%d",
			TierHigh.Rank(), TierMedium.Rank(), TierLow.Rank())
	}
}

func TestTierRankDiffersFromAlphabeticOrder(t *testing.T) {
	// Alphabetically High < Low < Medium; the rank table must not agree.
	if TierLow.Rank() < TierMedium.Rank() {
		t.Error("rank table matches alphabetic order; Medium must rank above Low")
	}
}

func TestUnknownTierRanksAsLow(t *testing.T) {
	if got := Tier("Unrated").Rank(); got != TierLow.Rank() {
		t.Errorf("unknown tier rank = %d, want %d", got, TierLow.Rank())
	}
	if Tier("Unrated").Valid() {
		t.Error("unknown tier reported valid")
	}
}

func TestTierValid(t *testing.T) {
	for _, tier := range []Tier{TierHigh, TierMedium, TierLow} {
		if !tier.Valid() {
			t.Errorf("%s should be valid", tier)
		}
	}
}
