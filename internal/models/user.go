package models

import "time"

// User is an account that owns contacts. Token is the current session
// credential; empty means no live session. The bson omitempty keeps the
// token field out of the document entirely so the partial unique index
// only covers live sessions.
type User struct {
	ID        int64     `bson:"_id" json:"-"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"`
	Name      string    `bson:"name" json:"name"`
	Token     string    `bson:"token,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"-"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}
