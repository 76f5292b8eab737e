package testutil

import "nixclean/internal/clean"

// StubSystem is a scripted clean.System for tests. Elevate records the call
// and returns, which lets tests observe that elevation would have happened
// and then continue as if it had.
type StubSystem struct {
	UID            int
	User           clean.User
	UserErr        error
	AllUsers       []clean.User
	UsersErr       error
	UIDMin, UIDMax uint32

	ElevateCalls int
	ElevateErr   error
}

// NewStubSystem creates a system resembling an unprivileged Linux user.
func NewStubSystem() *StubSystem {
	return &StubSystem{
		UID:    1000,
		User:   clean.User{UID: 1000, Name: "alice", Home: "/home/alice"},
		UIDMin: 1000,
		UIDMax: 1100,
	}
}

func (s *StubSystem) EffectiveUID() int { return s.UID }

func (s *StubSystem) CurrentUser() (clean.User, error) {
	if s.UserErr != nil {
		return clean.User{}, s.UserErr
	}
	return s.User, nil
}

func (s *StubSystem) Users() ([]clean.User, error) {
	if s.UsersErr != nil {
		return nil, s.UsersErr
	}
	return s.AllUsers, nil
}

func (s *StubSystem) RegularUIDRange() (uint32, uint32) { return s.UIDMin, s.UIDMax }

func (s *StubSystem) Elevate() error {
	s.ElevateCalls++
	return s.ElevateErr
}
