package session

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchExternal observes the persisted session file so a logout performed
// by another process using the same storage directory (the cross-tab case)
// is picked up by this one. Removing the file, or rewriting it without an
// access token, clears the in-memory session.
func (m *Manager) WatchExternal(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher -> %w", err)
	}

	// Watch the directory, not the file: the atomic rename-on-save replaces
	// the inode, and removal events only arrive reliably on the parent.
	if err := watcher.Add(m.store.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watcher.Add -> %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != m.store.SessionPath() {
					continue
				}
				m.handleExternalChange(event)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				zap.L().Warn("session watcher error", zap.Error(err))
			}
		}
	}()

	return nil
}

func (m *Manager) handleExternalChange(event fsnotify.Event) {
	if event.Op&fsnotify.Remove != 0 {
		m.observeExternalLogout()
		return
	}

	if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
		sess, err := m.store.Load()
		if err != nil {
			return
		}
		if sess.AccessToken == "" {
			m.observeExternalLogout()
		}
	}
}

func (m *Manager) observeExternalLogout() {
	m.mu.Lock()
	loggedIn := m.status == StatusAuthenticated
	if loggedIn {
		m.session.AccessToken = ""
		m.session.RefreshToken = ""
		m.session.User = nil
		m.status = StatusUnauthenticated
	}
	m.mu.Unlock()

	if loggedIn {
		zap.L().Info("session cleared externally, logging out")
		m.notify()
	}
}
