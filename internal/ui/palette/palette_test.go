package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownSlots(t *testing.T) {
	p := Default()
	for _, name := range Names() {
		_, ok := p.Lookup(name)
		assert.True(t, ok, name)
	}

	cs, ok := p.Lookup("danger")
	require.True(t, ok)
	assert.Equal(t, p.Danger, cs)

	_, ok = p.Lookup("neon")
	assert.False(t, ok)
}

func TestVariantFallsBackToPrimary(t *testing.T) {
	p := Default()
	assert.Equal(t, p.Primary, p.Variant(""))
	assert.Equal(t, p.Primary, p.Variant("unknown"))
	assert.Equal(t, p.Success, p.Variant("success"))
}

func TestDarkOnlyChangesSurfaceAndNeutral(t *testing.T) {
	light, dark := Default(), Dark()
	assert.Equal(t, light.Primary, dark.Primary)
	assert.Equal(t, light.Danger, dark.Danger)
	assert.NotEqual(t, light.Surface, dark.Surface)
	assert.NotEqual(t, light.Neutral, dark.Neutral)
}

func TestHighContrastOnBase(t *testing.T) {
	p := HighContrast()
	assert.Equal(t, "#ffffff", p.Primary.OnBase.Dark)
	assert.Equal(t, "#000000", p.Warning.OnBase.Light)
	assert.Equal(t, Dark().Primary.Base, p.Primary.Base)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.Len(t, names, 8)
	assert.IsNonDecreasing(t, names)
}
