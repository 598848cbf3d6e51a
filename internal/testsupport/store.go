package testsupport

import (
	"context"
	"testing"

	"coursework/internal/config"
	"coursework/internal/journal"
)

// MustOpenJournal opens a journal.Store for tests and registers cleanup.
func MustOpenJournal(t testing.TB, cfg *config.Config) *journal.Store {
	t.Helper()

	store, err := journal.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// BeginSession starts a journal session for tests.
func BeginSession(t testing.TB, store *journal.Store, command string) *journal.Session {
	t.Helper()

	session, err := store.BeginSession(context.Background(), command, "en")
	if err != nil {
		t.Fatalf("store.BeginSession: %v", err)
	}
	return session
}
