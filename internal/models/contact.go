package models

import "time"

// Contact belongs to exactly one user; UserID is set at creation and never
// changes afterwards.
type Contact struct {
	ID        int64     `bson:"_id" json:"id"`
	UserID    int64     `bson:"userId" json:"-"`
	FirstName string    `bson:"firstName" json:"first_name"`
	LastName  string    `bson:"lastName,omitempty" json:"last_name"`
	Email     string    `bson:"email,omitempty" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone"`
	CreatedAt time.Time `bson:"createdAt" json:"-"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}
