package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxQueryWorkers: 2})

	// Acquire 2
	require.NoError(t, c.AcquireWorker(context.Background()))
	require.NoError(t, c.AcquireWorker(context.Background()))
	assert.Equal(t, int64(2), c.InFlight())

	// Try 3rd
	assert.False(t, c.TryAcquireWorker())

	// Blocking 3rd acquire should time out
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := c.AcquireWorker(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Release 1, then the 3rd acquire succeeds
	c.ReleaseWorker()
	assert.Equal(t, int64(1), c.InFlight())
	require.NoError(t, c.AcquireWorker(context.Background()))
	assert.Equal(t, int64(2), c.InFlight())
}

func TestController_DefaultBudget(t *testing.T) {
	c := NewController(Config{})

	assert.Equal(t, int64(1), c.MaxQueryWorkers())
	require.NoError(t, c.AcquireWorker(context.Background()))
	assert.False(t, c.TryAcquireWorker())
	c.ReleaseWorker()
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	// A nil controller applies no budget.
	require.NoError(t, c.AcquireWorker(context.Background()))
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	assert.Equal(t, int64(0), c.InFlight())
	assert.Equal(t, int64(0), c.MaxQueryWorkers())
}
