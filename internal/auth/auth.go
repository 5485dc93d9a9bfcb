// Package auth isolates the teacher-credential contract behind an interface.
// The current contract is deliberately weak: mutating endpoints authenticate
// with a bare username carried as a query parameter, and check-session proves
// nothing beyond the username existing. Handlers only ever see the interface,
// so a token-based scheme can replace this without touching them.
package auth

import (
	"errors"

	"mergington/school-api/internal/crypto"
	"mergington/school-api/internal/model"
	"mergington/school-api/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Authenticator interface {
	// Authenticate resolves a username to a teacher record. No secret is
	// involved; this backs both the teacher_username query parameter and
	// the check-session endpoint.
	Authenticate(username string) (model.Teacher, error)

	// Login verifies a password against the stored hash.
	Login(username, password string) (model.Teacher, error)
}

type StoreAuthenticator struct {
	store *store.Store
}

func NewStoreAuthenticator(s *store.Store) *StoreAuthenticator {
	return &StoreAuthenticator{store: s}
}

func (a *StoreAuthenticator) Authenticate(username string) (model.Teacher, error) {
	return a.store.GetTeacher(username)
}

// Login returns ErrInvalidCredentials for both unknown usernames and wrong
// passwords so callers cannot distinguish the two.
func (a *StoreAuthenticator) Login(username, password string) (model.Teacher, error) {
	teacher, err := a.store.GetTeacher(username)
	if err != nil {
		return model.Teacher{}, ErrInvalidCredentials
	}
	if err := crypto.CheckPassword(teacher.PasswordHash, password); err != nil {
		return model.Teacher{}, ErrInvalidCredentials
	}
	return teacher, nil
}
