package session

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWatcherDisabledByZeroInterval(t *testing.T) {
	svc, _ := newTestService(t)
	watcher := NewWatcher(svc, zerolog.Nop())

	require.NoError(t, watcher.Start(0))

	// Stop with nothing scheduled must not block or panic.
	<-watcher.Stop().Done()
}
