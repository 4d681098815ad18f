// Package memstore is an in-memory store implementation used by tests. It
// mirrors the observable behavior of mongostore: ownership-scoped lookups,
// case-insensitive substring search, sequential ids and cascade deletes.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"contactbook/internal/models"
	"contactbook/internal/store"
)

type Store struct {
	mu        sync.Mutex
	lastID    int64
	users     map[int64]models.User
	contacts  map[int64]models.Contact
	addresses map[int64]models.Address
}

func New() *Store {
	return &Store{
		users:     make(map[int64]models.User),
		contacts:  make(map[int64]models.Contact),
		addresses: make(map[int64]models.Address),
	}
}

func (s *Store) Stores() store.Stores {
	return store.Stores{
		Users:     &userStore{s},
		Contacts:  &contactStore{s},
		Addresses: &addressStore{s},
	}
}

// nextID must be called with mu held.
func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

type userStore struct {
	s *Store
}

func (u *userStore) Create(_ context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, existing := range u.s.users {
		if existing.Username == user.Username {
			return store.ErrDuplicate
		}
	}

	now := time.Now()
	user.ID = u.s.nextID()
	user.CreatedAt = now
	user.UpdatedAt = now
	u.s.users[user.ID] = *user
	return nil
}

func (u *userStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, user := range u.s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *userStore) FindByToken(_ context.Context, token string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if token == "" {
		return nil, store.ErrNotFound
	}
	for _, user := range u.s.users {
		if user.Token == token {
			found := user
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *userStore) Update(_ context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if _, ok := u.s.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	u.s.users[user.ID] = *user
	return nil
}

type contactStore struct {
	s *Store
}

func (c *contactStore) Create(_ context.Context, contact *models.Contact) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	now := time.Now()
	contact.ID = c.s.nextID()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	c.s.contacts[contact.ID] = *contact
	return nil
}

func (c *contactStore) FindByID(_ context.Context, userID, contactID int64) (*models.Contact, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	contact, ok := c.s.contacts[contactID]
	if !ok || contact.UserID != userID {
		return nil, store.ErrNotFound
	}
	found := contact
	return &found, nil
}

func (c *contactStore) Update(_ context.Context, contact *models.Contact) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	existing, ok := c.s.contacts[contact.ID]
	if !ok || existing.UserID != contact.UserID {
		return store.ErrNotFound
	}
	contact.UpdatedAt = time.Now()
	c.s.contacts[contact.ID] = *contact
	return nil
}

func (c *contactStore) Delete(_ context.Context, contact *models.Contact) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	existing, ok := c.s.contacts[contact.ID]
	if !ok || existing.UserID != contact.UserID {
		return store.ErrNotFound
	}
	delete(c.s.contacts, contact.ID)
	for id, address := range c.s.addresses {
		if address.ContactID == contact.ID {
			delete(c.s.addresses, id)
		}
	}
	return nil
}

func (c *contactStore) Search(_ context.Context, userID int64, filter store.ContactFilter, page store.Page) ([]models.Contact, int64, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	matched := make([]models.Contact, 0)
	for _, contact := range c.s.contacts {
		if contact.UserID == userID && matches(contact, filter) {
			matched = append(matched, contact)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := (page.Number - 1) * page.Size
	if start >= total {
		return []models.Contact{}, total, nil
	}
	end := start + page.Size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matches(contact models.Contact, filter store.ContactFilter) bool {
	if filter.Name != "" &&
		!containsFold(contact.FirstName, filter.Name) &&
		!containsFold(contact.LastName, filter.Name) {
		return false
	}
	if filter.Phone != "" && !containsFold(contact.Phone, filter.Phone) {
		return false
	}
	if filter.Email != "" && !containsFold(contact.Email, filter.Email) {
		return false
	}
	return true
}

func containsFold(value, substr string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}

type addressStore struct {
	s *Store
}

func (a *addressStore) Create(_ context.Context, address *models.Address) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	now := time.Now()
	address.ID = a.s.nextID()
	address.CreatedAt = now
	address.UpdatedAt = now
	a.s.addresses[address.ID] = *address
	return nil
}

func (a *addressStore) FindByID(_ context.Context, contactID, addressID int64) (*models.Address, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	address, ok := a.s.addresses[addressID]
	if !ok || address.ContactID != contactID {
		return nil, store.ErrNotFound
	}
	found := address
	return &found, nil
}

func (a *addressStore) Update(_ context.Context, address *models.Address) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	existing, ok := a.s.addresses[address.ID]
	if !ok || existing.ContactID != address.ContactID {
		return store.ErrNotFound
	}
	address.UpdatedAt = time.Now()
	a.s.addresses[address.ID] = *address
	return nil
}

func (a *addressStore) Delete(_ context.Context, address *models.Address) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	existing, ok := a.s.addresses[address.ID]
	if !ok || existing.ContactID != address.ContactID {
		return store.ErrNotFound
	}
	delete(a.s.addresses, address.ID)
	return nil
}

func (a *addressStore) ListByContact(_ context.Context, contactID int64) ([]models.Address, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	addresses := make([]models.Address, 0)
	for _, address := range a.s.addresses {
		if address.ContactID == contactID {
			addresses = append(addresses, address)
		}
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i].ID < addresses[j].ID })
	return addresses, nil
}
