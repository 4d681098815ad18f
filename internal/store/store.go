package store

import (
	"context"
	"errors"

	"contactbook/internal/models"
)

// ErrNotFound is returned when a lookup matches no row, including the case
// where the row exists but belongs to someone else. Callers must not be able
// to tell the two apart.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint,
// such as an already-taken username.
var ErrDuplicate = errors.New("duplicate")

// ContactFilter holds the optional search predicates. Empty fields impose no
// constraint; supplied fields AND together.
type ContactFilter struct {
	Name  string
	Phone string
	Email string
}

// Page is 1-based.
type Page struct {
	Number int64
	Size   int64
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByToken(ctx context.Context, token string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	// FindByID looks up a contact by id scoped to its owner. A contact owned
	// by a different user is ErrNotFound.
	FindByID(ctx context.Context, userID, contactID int64) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	// Delete removes the contact and every address that belongs to it.
	Delete(ctx context.Context, contact *models.Contact) error
	// Search returns the requested page of the user's contacts matching the
	// filter, plus the total match count.
	Search(ctx context.Context, userID int64, filter ContactFilter, page Page) ([]models.Contact, int64, error)
}

type AddressStore interface {
	Create(ctx context.Context, address *models.Address) error
	// FindByID looks up an address by id scoped to its parent contact.
	FindByID(ctx context.Context, contactID, addressID int64) (*models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, address *models.Address) error
	// ListByContact returns the contact's addresses in insertion order.
	ListByContact(ctx context.Context, contactID int64) ([]models.Address, error)
}

// Stores bundles the per-entity stores for handler wiring.
type Stores struct {
	Users     UserStore
	Contacts  ContactStore
	Addresses AddressStore
}
