package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/usv-events/client-go/internal/domain"
)

const (
	sessionFileName = "usv_session.json"
	draftFilePrefix = "usv_event_draft_"
)

// Store persists client state (credentials, form drafts) under one
// directory. It is the durable-storage half of the session: the in-memory
// copy held by the Manager stays authoritative for rendering.
type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) SessionPath() string {
	return filepath.Join(s.dir, sessionFileName)
}

// Load returns the persisted session, or a zero session when none exists.
func (s *Store) Load() (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.SessionPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("os.ReadFile -> %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// A corrupt file is treated as logged out rather than an error the
		// caller must handle.
		return domain.Session{}, nil
	}

	return sess, nil
}

func (s *Store) Save(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	return s.writeAtomic(s.SessionPath(), raw)
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.SessionPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove -> %w", err)
	}
	return nil
}

// Drafts are keyed per user id so one account's unfinished event form never
// leaks into another account on a shared machine.

func (s *Store) draftPath(userID string) string {
	return filepath.Join(s.dir, draftFilePrefix+userID+".json")
}

func (s *Store) SaveDraft(userID string, draft json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeAtomic(s.draftPath(userID), draft)
}

// LoadDraft returns nil when no draft is stored.
func (s *Store) LoadDraft(userID string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.draftPath(userID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("os.ReadFile -> %w", err)
	}
	return raw, nil
}

func (s *Store) ClearDraft(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.draftPath(userID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove -> %w", err)
	}
	return nil
}

// writeAtomic keeps concurrent readers (other processes watching the file)
// from ever observing a partial write.
func (s *Store) writeAtomic(path string, raw []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile -> %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("os.Rename -> %w", err)
	}
	return nil
}
