package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_KnownValue(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{1, 2}, Point{4, 6}))
}

func TestDistance_Symmetric(t *testing.T) {
	p := Point{X: -3.5, Y: 2}
	q := Point{X: 7, Y: -1.25}
	assert.Equal(t, Distance(p, q), Distance(q, p))
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	p := Point{X: 12.5, Y: -8}
	assert.Zero(t, Distance(p, p))
}

func TestDistance_NonNegative(t *testing.T) {
	assert.GreaterOrEqual(t, Distance(Point{-1, -1}, Point{-4, -5}), 0.0)
	assert.Equal(t, 5.0, Distance(Point{-1, -1}, Point{-4, -5}))
}
