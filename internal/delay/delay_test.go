package delay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfter(t *testing.T) {
	start := time.Now()
	done := After(30 * time.Millisecond)

	// the caller is not blocked
	require.Less(t, time.Since(start), 30*time.Millisecond)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("After never fired")
	}
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	// closed channels keep delivering
	select {
	case <-done:
	default:
		t.Error("channel should stay closed")
	}
}

func TestMillis(t *testing.T) {
	start := time.Now()
	<-Millis(20)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestAfter_Zero(t *testing.T) {
	select {
	case <-After(0):
	case <-time.After(time.Second):
		t.Fatal("zero delay should fire promptly")
	}
}

func TestAfter_DoesNotBlockOthers(t *testing.T) {
	slow := After(200 * time.Millisecond)
	fast := After(10 * time.Millisecond)

	select {
	case <-fast:
	case <-slow:
		t.Fatal("slow delay fired first")
	}
}

func TestWait(t *testing.T) {
	start := time.Now()
	require.NoError(t, Wait(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWait_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Wait(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
