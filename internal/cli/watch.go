package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/veloxts/compiler/load"
)

// debounce groups bursts of file events (editors often write a file in
// several steps) into one regeneration.
const debounce = 200 * time.Millisecond

// watch runs fn once, then again each time a schema document in dir is
// created, written, removed or renamed. Failures of fn are logged and do
// not stop the watch. It returns when ctx is done.
func watch(ctx context.Context, dir string, logger *slog.Logger, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return wrapError(fmt.Sprintf("watch: %v", err), err, "", 1)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return wrapError(fmt.Sprintf("watch %s: %v", dir, err), err, "", 1)
	}
	run := func() {
		if err := fn(); err != nil {
			logger.Error("regeneration failed", "error", err)
		}
	}
	run()
	logger.Info("watching schema documents", "dir", dir)

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			logger.Debug("schema changed", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-timer.C:
			run()
		}
	}
}

// relevant reports whether the event may change the generated output.
func relevant(ev fsnotify.Event) bool {
	if _, ok := load.FormatOf(ev.Name); !ok {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
