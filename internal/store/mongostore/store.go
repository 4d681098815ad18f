package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"contactbook/internal/store"
)

// New wires the Mongo-backed stores over the given database.
func New(db *mongo.Database) store.Stores {
	return store.Stores{
		Users:     &UserStore{db: db},
		Contacts:  &ContactStore{db: db},
		Addresses: &AddressStore{db: db},
	}
}

// nextID hands out sequential numeric ids per collection from the counters
// collection. The upsert makes the first call for a name start at 1.
func nextID(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	res := db.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
