// Package watch re-loads a deck file while it is being presented.
package watch

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"diapo/internal/domain"
	"diapo/internal/ports"
)

const debounce = 200 * time.Millisecond

// Watch monitors the deck file until ctx is cancelled, re-parsing it on
// change and handing each fresh deck to deliver. Bursts of writes are
// debounced. Read and parse failures are logged and skipped so the
// presentation keeps the last good deck.
//
// The parent directory is watched rather than the file itself: editors
// that save via rename would otherwise detach the watch.
func Watch(ctx context.Context, path string, source ports.DeckSource, deliver func(*domain.Deck)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	base := filepath.Base(path)

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(debounce)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			return nil

		case <-reloadCh:
			deck, loadErr := source.Load(path)
			if loadErr != nil {
				log.Printf("watch: reload failed: %v", loadErr)
				continue
			}
			deliver(deck)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", watchErr)
		}
	}
}
