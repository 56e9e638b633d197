package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windbem/bemcore/internal/fixtures"
)

func TestNREL5MW_HasEightSections(t *testing.T) {
	g := fixtures.NREL5MW()
	assert.Equal(t, 8, g.NumSections())
	assert.Equal(t, 63.0, g.RotorRadius())
	assert.Equal(t, 1.5, g.HubRadius())
	assert.Equal(t, 3, g.NumBlades())
}

func TestNREL5MW_RadiiAreStrictlyIncreasing(t *testing.T) {
	g := fixtures.NREL5MW()
	for i := 1; i < g.NumSections(); i++ {
		assert.Greater(t, g.Radius(i), g.Radius(i-1))
	}
}
