package auth

import (
	"errors"
	"testing"

	"mergington/school-api/internal/store"
)

func testAuthenticator(t *testing.T) *StoreAuthenticator {
	t.Helper()
	s, err := store.New(store.Seed{
		Teachers: []store.SeedTeacher{
			{Username: "mrodriguez", Password: "art3mis", DisplayName: "Ms. Rodriguez", Role: "teacher"},
		},
	})
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return NewStoreAuthenticator(s)
}

func TestLogin(t *testing.T) {
	a := testAuthenticator(t)

	teacher, err := a.Login("mrodriguez", "art3mis")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if teacher.Display() != "Ms. Rodriguez" {
		t.Fatalf("expected display name, got %s", teacher.Display())
	}

	if _, err := a.Login("mrodriguez", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := a.Login("nobody", "art3mis"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestAuthenticateNeedsNoSecret(t *testing.T) {
	a := testAuthenticator(t)

	if _, err := a.Authenticate("mrodriguez"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := a.Authenticate("nobody"); !errors.Is(err, store.ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
}
