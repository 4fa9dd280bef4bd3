package auth

import "errors"

// Teacher is the credential record checked at login. PasswordHash is
// bcrypt and never serialized.
type Teacher struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

var ErrUnknownUser = errors.New("unknown user")

// CredentialStore resolves a username to its credential record. The
// default backing is a static in-memory list; a persistent store can
// be swapped in without touching the login handler.
type CredentialStore interface {
	Lookup(username string) (Teacher, error)
}

type StaticStore struct {
	teachers []Teacher
}

func NewStaticStore(teachers ...Teacher) *StaticStore {
	return &StaticStore{teachers: teachers}
}

// DefaultStore holds the single teacher account the app ships with
// (password: guru123).
func DefaultStore() *StaticStore {
	return NewStaticStore(Teacher{
		ID:           "1",
		Username:     "guru",
		Name:         "Guru Bahasa Arab",
		PasswordHash: "$2b$10$hb99EuTWKXe0.yI8TgDeh.GHYsDrNSsc/ePE3g4exNl6Ytwi59tsy",
	})
}

func (s *StaticStore) Lookup(username string) (Teacher, error) {
	for _, t := range s.teachers {
		if t.Username == username {
			return t, nil
		}
	}
	return Teacher{}, ErrUnknownUser
}
