package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricing_Cost(t *testing.T) {
	p := Pricing{
		InputCostPerToken:  0.15 / 1_000_000,
		OutputCostPerToken: 0.60 / 1_000_000,
	}

	assert.InEpsilon(t, 4.5e-5, p.Cost(100, 50), 1e-12)
	assert.Zero(t, p.Cost(0, 0))
}
