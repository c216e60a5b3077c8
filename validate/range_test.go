package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0, 1, 0.5))
	assert.True(t, InRange(0, 1, 0))
	assert.True(t, InRange(0, 1, 1))
	assert.False(t, InRange(0, 1, -0.1))
	assert.False(t, InRange(0, 1, 1.1))
}

func TestInUnitRange(t *testing.T) {
	assert.True(t, InUnitRange(0))
	assert.True(t, InUnitRange(1))
	assert.True(t, InUnitRange(1.0000005))
	assert.False(t, InUnitRange(1.01))
	assert.False(t, InUnitRange(-0.01))
}

func TestPositive(t *testing.T) {
	assert.True(t, Positive(0.02))
	assert.False(t, Positive(0))
	assert.False(t, Positive(-1))
}
