package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorMul_ExactDecimal(t *testing.T) {
	assert.Equal(t, int64(350000), FloorMul(1000000, 0.35))
	assert.Equal(t, int64(850000), FloorMul(1000000, 0.85, 1.0))
	assert.Equal(t, int64(9360000), FloorMul(83200000, 0.45, 0.25))
	assert.Equal(t, int64(2), FloorMul(10, 0.25))
	assert.Equal(t, int64(7), FloorMul(7))
}

func TestFloorShare(t *testing.T) {
	assert.Equal(t, int64(125), FloorShare(3250, 26, 1))
	assert.Equal(t, int64(1634), FloorShare(42500, 26, 1))
	assert.Equal(t, int64(150), FloorShare(3250, 26, 1.2))
	assert.Equal(t, int64(0), FloorShare(100, 0, 1))
	assert.Equal(t, int64(0), FloorShare(100, -3, 1))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(450), FloorDiv(4500, 10))
	assert.Equal(t, int64(3), FloorDiv(10, 3))
	assert.Equal(t, int64(0), FloorDiv(10, 0))
}

func TestComplementAndProduct(t *testing.T) {
	assert.Equal(t, 0.15, Complement(0.85))
	assert.Equal(t, 0.4, Complement(0.6))
	assert.Equal(t, 0.99, Product(0.9, 1.1))
	assert.Equal(t, 1.0, Product())
}

func TestClampAndMin(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1.1385, 0, 1))
	assert.Equal(t, 0.0, Clamp(-0.5, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
	assert.Equal(t, int64(3), MinInt64(3, 9))
	assert.Equal(t, int64(-1), MinInt64(4, -1))
}
