package session

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mentorlane/internal/errors"
)

func testUser() User {
	return User{ID: "u-7", Name: "Priya", Email: "priya@example.com", Role: RoleUser}
}

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	sess := New(testUser())
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.User != sess.User {
		t.Errorf("loaded user = %+v, want %+v", loaded.User, sess.User)
	}
}

func TestStoreLoad(t *testing.T) {
	t.Run("missing session is not logged in", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewStore() error = %v", err)
		}
		if _, err := store.Load(); !errors.Is(err, errors.ErrNotLoggedIn) {
			t.Errorf("Load() error = %v, want ErrNotLoggedIn", err)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		if err != nil {
			t.Fatalf("NewStore() error = %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := store.Load(); !errors.Is(err, errors.ErrSessionCorrupted) {
			t.Errorf("Load() error = %v, want ErrSessionCorrupted", err)
		}
	})

	t.Run("missing user ID is corrupt", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		if err != nil {
			t.Fatalf("NewStore() error = %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte(`{"user":{}}`), 0600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := store.Load(); !errors.Is(err, errors.ErrSessionCorrupted) {
			t.Errorf("Load() error = %v, want ErrSessionCorrupted", err)
		}
	})

	t.Run("unknown role is corrupt", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		if err != nil {
			t.Fatalf("NewStore() error = %v", err)
		}
		body := `{"user":{"id":"u-1","role":"admin"}}`
		if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte(body), 0600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := store.Load(); !errors.Is(err, errors.ErrSessionCorrupted) {
			t.Errorf("Load() error = %v, want ErrSessionCorrupted", err)
		}
	})
}

func TestStoreClear(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	if err := store.Save(New(testUser())); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !store.Exists() {
		t.Fatal("session should exist after save")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if store.Exists() {
		t.Error("session should not exist after clear")
	}

	// Clearing again is a no-op.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestSessionFilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if err := store.Save(New(testUser())); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want 0600", perm)
	}
}

func TestSessionCookies(t *testing.T) {
	t.Run("round trip through persistence", func(t *testing.T) {
		sess := New(testUser())
		sess.SetCookies([]*http.Cookie{
			{Name: "auth", Value: "tok-1", Path: "/", HttpOnly: true},
		})

		store, err := NewStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewStore() error = %v", err)
		}
		if err := store.Save(sess); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		loaded, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		cookies := loaded.HTTPCookies()
		if len(cookies) != 1 {
			t.Fatalf("got %d cookies, want 1", len(cookies))
		}
		if cookies[0].Name != "auth" || cookies[0].Value != "tok-1" || !cookies[0].HttpOnly {
			t.Errorf("cookie = %+v", cookies[0])
		}
	})

	t.Run("expired cookies are dropped", func(t *testing.T) {
		sess := New(testUser())
		sess.SetCookies([]*http.Cookie{
			{Name: "stale", Value: "x", Expires: time.Now().Add(-time.Hour)},
			{Name: "fresh", Value: "y", Expires: time.Now().Add(time.Hour)},
		})
		if len(sess.Cookies) != 1 || sess.Cookies[0].Name != "fresh" {
			t.Errorf("cookies = %+v, want only fresh", sess.Cookies)
		}
	})
}

func TestRole(t *testing.T) {
	if !RoleUser.Valid() || !RoleMentor.Valid() {
		t.Error("known roles should be valid")
	}
	if Role("admin").Valid() {
		t.Error("unknown role should be invalid")
	}

	mentor := New(User{ID: "m-1", Role: RoleMentor})
	if !mentor.IsMentor() {
		t.Error("IsMentor() should be true for mentor role")
	}
	if New(testUser()).IsMentor() {
		t.Error("IsMentor() should be false for user role")
	}
}
