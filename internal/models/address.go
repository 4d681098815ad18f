package models

import "time"

// Address belongs to exactly one contact and cannot outlive it.
type Address struct {
	ID         int64     `bson:"_id" json:"id"`
	ContactID  int64     `bson:"contactId" json:"-"`
	Street     string    `bson:"street,omitempty" json:"street"`
	City       string    `bson:"city,omitempty" json:"city"`
	Province   string    `bson:"province,omitempty" json:"province"`
	Country    string    `bson:"country" json:"country"`
	PostalCode string    `bson:"postalCode,omitempty" json:"postal_code"`
	CreatedAt  time.Time `bson:"createdAt" json:"-"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"-"`
}
