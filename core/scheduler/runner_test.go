package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigInterval(t *testing.T) {
	assert.Equal(t, time.Minute, Config{}.Interval())
	assert.Equal(t, 5*time.Second, Config{IntervalSeconds: 5}.Interval())
}

func TestRunnerEvery(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "base")

	r := New(ctx, zap.NewNop())
	var runs atomic.Int32
	var sawBase atomic.Bool
	_, err := r.Every(time.Second, func(ctx context.Context) {
		sawBase.Store(ctx.Value(key{}) == "base")
		runs.Add(1)
	})
	require.NoError(t, err)
	require.Len(t, r.Entries(), 1)

	r.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	r.Stop()
	assert.True(t, sawBase.Load())
}

func TestRunnerRecoversPanics(t *testing.T) {
	r := New(nil, zap.NewNop())
	var runs atomic.Int32
	_, err := r.Every(time.Second, func(context.Context) {
		runs.Add(1)
		panic("boom")
	})
	require.NoError(t, err)

	r.Start()
	defer r.Stop()
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 4*time.Second, 20*time.Millisecond)
}

func TestRunnerRejectsBadSchedules(t *testing.T) {
	r := New(nil, zap.NewNop())
	_, err := r.Every(0, func(context.Context) {})
	assert.Error(t, err)

	_, err = r.Add("not a schedule", func(context.Context) {})
	assert.Error(t, err)
}
