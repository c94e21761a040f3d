// pkg/monitor/service_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: testutil.ManualNotifier, testutil.MemoryClipboard
// PURPOSE: Test the service lifecycle

package monitor_test

import (
	"context"
	"testing"
	"time"

	"github.com/arthur-debert/clipfix/pkg/errors"
	"github.com/arthur-debert/clipfix/pkg/monitor"
	"github.com/arthur-debert/clipfix/pkg/testutil"
	"github.com/arthur-debert/clipfix/pkg/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifierFunc func(ctx context.Context, h watcher.Handler) error

func (f notifierFunc) Run(ctx context.Context, h watcher.Handler) error { return f(ctx, h) }

func TestService_RewritesOnNotification(t *testing.T) {
	clip := testutil.NewMemoryClipboard("")
	notifier := testutil.NewManualNotifier()
	m := monitor.New(clip, nil)
	svc := monitor.NewService(notifier, m, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	<-notifier.Started()
	clip.Set("https://x.com/someuser/status/1")
	notifier.Fire <- struct{}{}

	require.Eventually(t, func() bool { return len(clip.Writes()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "https://fixvx.com/someuser/status/1", clip.Text())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("service did not stop")
	}
}

func TestService_NotifierFailure(t *testing.T) {
	boom := errors.New(errors.ErrWatcherSetup, "no watcher")
	svc := monitor.NewService(notifierFunc(func(context.Context, watcher.Handler) error {
		return boom
	}), monitor.New(testutil.NewMemoryClipboard(""), nil), time.Millisecond)

	err := svc.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestService_StopsWhenNotifierReturns(t *testing.T) {
	svc := monitor.NewService(notifierFunc(func(context.Context, watcher.Handler) error {
		return nil
	}), monitor.New(testutil.NewMemoryClipboard(""), nil), time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- svc.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("service did not stop")
	}
}
