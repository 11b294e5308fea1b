// Package clientstate keeps the client-side "already liked" marker.
//
// The marker is advisory. The server accepts every increment; the marker
// only stops a well-behaved client from liking twice inside the window.
package clientstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultWindow is how long a recorded like suppresses another one.
const DefaultWindow = 7 * 24 * time.Hour

type Marker struct {
	Path   string
	Window time.Duration
}

type state struct {
	LikedAt time.Time `json:"liked_at"`
}

// DefaultPath returns the marker location under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "likectl", "state.json"), nil
}

func (m Marker) window() time.Duration {
	if m.Window > 0 {
		return m.Window
	}
	return DefaultWindow
}

// LikedAt returns when the last like was recorded. ok is false when there is
// no marker or it cannot be parsed.
func (m Marker) LikedAt() (t time.Time, ok bool, err error) {
	b, err := os.ReadFile(m.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	var st state
	if err := json.Unmarshal(b, &st); err != nil || st.LikedAt.IsZero() {
		return time.Time{}, false, nil
	}
	return st.LikedAt, true, nil
}

// CanLike reports whether now is outside the window of the recorded like.
func (m Marker) CanLike(now time.Time) (bool, error) {
	at, ok, err := m.LikedAt()
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return !now.Before(at.Add(m.window())), nil
}

// Record stores now as the time of the last successful like.
func (m Marker) Record(now time.Time) error {
	b, err := json.Marshal(state{LikedAt: now.UTC()})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.Path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := m.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return os.Rename(tmp, m.Path)
}

func (m Marker) Clear() error {
	if err := os.Remove(m.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
