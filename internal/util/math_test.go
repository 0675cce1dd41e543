package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 0, PercentOf(0, 3))
	assert.Equal(t, 33, PercentOf(1, 3))
	assert.Equal(t, 67, PercentOf(2, 3))
	assert.Equal(t, 100, PercentOf(3, 3))
	assert.Equal(t, 50, PercentOf(1, 2))
	assert.Equal(t, 0, PercentOf(5, 0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 2.33, Round2(7.0/3.0))
	assert.Equal(t, 0.67, Round2(2.0/3.0))
	assert.Equal(t, 0.0, Round2(0))
}
