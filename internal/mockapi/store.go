package mockapi

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Company mirrors the entity returned by the creation endpoint.
type Company struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	LogoURL   string `json:"logoUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type companyStore struct {
	mu        sync.Mutex
	companies []Company
}

func newCompanyStore() *companyStore {
	return &companyStore{}
}

func (s *companyStore) add(c Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies = append(s.companies, c)
}

func (s *companyStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.companies)
}

type user struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
}

type userStore struct {
	mu      sync.RWMutex
	byEmail map[string]*user
}

func newUserStore() *userStore {
	return &userStore{byEmail: make(map[string]*user)}
}

func (s *userStore) add(id, email, name, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byEmail[strings.ToLower(email)] = &user{ID: id, Email: email, Name: name, PasswordHash: hash}
	return nil
}

func (s *userStore) find(email string) (*user, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byEmail[strings.ToLower(email)]
	return u, ok
}
