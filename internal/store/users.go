package store

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/custodian/internal/model"
)

// defaultUsers are the accounts available to every store.
var defaultUsers = []struct {
	username string
	password string
	role     model.Role
}{
	{"admin", "123", model.RoleAdmin},
	{"user", "123", model.RoleUser},
}

func seedUsers(cost int) map[string]model.User {
	users := make(map[string]model.User, len(defaultUsers))
	for _, u := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), cost)
		if err != nil {
			panic("hashing seed password: " + err.Error())
		}
		users[u.username] = model.User{Username: u.username, PasswordHash: string(hash), Role: u.role}
	}
	return users
}

// Authenticate returns the user matching the credentials. The username must
// match exactly.
func (s *Store) Authenticate(username, password string) (model.User, bool) {
	s.mu.RLock()
	u, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return model.User{}, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return model.User{}, false
	}
	return u, true
}

// FindUser returns the user with the given name.
func (s *Store) FindUser(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	return u, ok
}
