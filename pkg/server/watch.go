package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// ReloadDebounce collapses the burst of events editors emit for a single save.
var ReloadDebounce = 250 * time.Millisecond

// Watch reloads the backend whenever one of paths changes, until ctx is done.
// Directories are watched rather than files so that editors replacing a file
// through rename are still seen. A failed reload keeps the running backend.
func (s *Server) Watch(ctx context.Context, paths ...string) error {
	if s.opts.Reload == nil {
		return errors.New("server has no reload function")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer watcher.Close()

	targets := make(map[string]struct{})
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrapf(err, "resolving %s", p)
		}
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return errors.Wrapf(err, "watching %s", filepath.Dir(abs))
		}
		targets[abs] = struct{}{}
	}
	if len(targets) == 0 {
		return nil
	}
	log.Debugf("Watching %d file(s) for changes", len(targets))

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, ok := targets[abs]; !ok {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(ReloadDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			s.reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("File watcher error: %v", err)
		}
	}
}

func (s *Server) reload() {
	b, err := s.opts.Reload()
	if err != nil {
		log.Errorf("Reload failed, keeping the running config: %v", err)
		return
	}
	s.Swap(b)
	log.Infof("Reloaded config for %d open session(s)", s.SessionCount())
}
