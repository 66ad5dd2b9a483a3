package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdjustment(t *testing.T) {
	for _, name := range []string{"lighter", "darker", "primary"} {
		a, err := ParseAdjustment(name)
		require.NoError(t, err)
		assert.Equal(t, Adjustment(name), a)
	}

	_, err := ParseAdjustment("brighter")
	assert.Error(t, err)
}

func TestAdjustment_Apply(t *testing.T) {
	c := FromHSLA(0.1, 0.6, 0.3, 1)

	assert.Equal(t, c.Lighter(0.2), AdjustLighter.Apply(c, 0.2))
	assert.Equal(t, c.Darker(0.2), AdjustDarker.Apply(c, 0.2))
	assert.Equal(t, c.Primary(0.2), AdjustPrimary.Apply(c, 0.2))
	assert.Equal(t, c, Adjustment("bogus").Apply(c, 0.2))
}
