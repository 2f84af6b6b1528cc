package pal

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateThreadRunsProcAndJoins(t *testing.T) {
	var ran atomic.Bool
	h := CreateThread(func(user any) int {
		ran.Store(true)
		return user.(int) * 2
	}, 21, 0)
	assert.Equal(t, 42, h.Join())
	assert.True(t, ran.Load())
}

func TestCreateThreadHappensBeforeVisibility(t *testing.T) {
	shared := 0
	h := CreateThread(func(user any) int {
		shared = user.(int)
		return 0
	}, 7, 0)
	h.Join()
	assert.Equal(t, 7, shared)
}

func TestProcessorCountPositive(t *testing.T) {
	assert.Greater(t, ProcessorCount(), 0)
}
