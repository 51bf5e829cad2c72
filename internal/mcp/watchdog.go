package mcp

import (
	"context"
	"os"
	"time"

	"rootfind/internal/logging"
)

// DefaultWatchInterval is how often WatchParent polls the parent PID.
var DefaultWatchInterval = 2 * time.Second

var getppid = os.Getppid

// WatchParent cancels the server when the parent process goes away, so a
// stdio server started by an editor does not outlive it.
//
// It must not read from stdin: the stdio transport owns it.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, interval time.Duration, cancelFn context.CancelFunc) {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	ppid := getppid()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if getppid() != ppid {
					logging.New("mcp").Warn("parent process died, shutting down", "ppid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
