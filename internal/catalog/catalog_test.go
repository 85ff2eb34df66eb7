package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanzar/internal/domain"
)

func TestServices_BelongToKnownCategories(t *testing.T) {
	categories := map[string]bool{}
	for _, c := range Categories {
		categories[c.ID] = true
	}

	seen := map[string]bool{}
	for _, s := range Services {
		assert.False(t, seen[s.ID], "duplicate service %s", s.ID)
		seen[s.ID] = true
		assert.True(t, categories[s.Category], "service %s has unknown category %s", s.ID, s.Category)
		assert.Len(t, s.Features, 4, s.ID)
	}
}

func TestPricingTiers_EveryServiceIsPriced(t *testing.T) {
	byService := map[string][]domain.PricingTier{}
	ids := map[string]bool{}
	for _, tier := range PricingTiers {
		assert.False(t, ids[tier.ID], "duplicate tier %s", tier.ID)
		ids[tier.ID] = true
		byService[tier.ServiceID] = append(byService[tier.ServiceID], tier)
	}

	for _, s := range Services {
		tiers := byService[s.ID]
		require.NotEmpty(t, tiers, s.ID)
		delete(byService, s.ID)
	}
	assert.Empty(t, byService, "tiers for unknown services")

	employment := domain.ServicePricing{ServiceID: "employment", Tiers: PricingTiers[:1]}
	assert.True(t, employment.PrimaryTier().Popular)
	assert.Nil(t, domain.ServicePricing{}.PrimaryTier())
}

func TestFrameworks_HaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Frameworks {
		assert.False(t, seen[f.ID], "duplicate framework %s", f.ID)
		seen[f.ID] = true
		assert.NotEmpty(t, f.Details, f.ID)
	}
}
