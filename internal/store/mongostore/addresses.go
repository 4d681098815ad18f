package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"contactbook/internal/models"
	"contactbook/internal/store"
)

type AddressStore struct {
	db *mongo.Database
}

func (s *AddressStore) collection() *mongo.Collection {
	return s.db.Collection("addresses")
}

func (s *AddressStore) Create(ctx context.Context, address *models.Address) error {
	id, err := nextID(ctx, s.db, "addresses")
	if err != nil {
		return err
	}

	now := time.Now()
	address.ID = id
	address.CreatedAt = now
	address.UpdatedAt = now

	_, err = s.collection().InsertOne(ctx, address)
	return err
}

func (s *AddressStore) FindByID(ctx context.Context, contactID, addressID int64) (*models.Address, error) {
	var address models.Address
	err := s.collection().FindOne(ctx, bson.M{"_id": addressID, "contactId": contactID}).Decode(&address)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (s *AddressStore) Update(ctx context.Context, address *models.Address) error {
	address.UpdatedAt = time.Now()

	res, err := s.collection().ReplaceOne(ctx,
		bson.M{"_id": address.ID, "contactId": address.ContactID}, address)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *AddressStore) Delete(ctx context.Context, address *models.Address) error {
	res, err := s.collection().DeleteOne(ctx,
		bson.M{"_id": address.ID, "contactId": address.ContactID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListByContact returns the contact's addresses ordered by id, which is
// insertion order under the sequential id scheme.
func (s *AddressStore) ListByContact(ctx context.Context, contactID int64) ([]models.Address, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.collection().Find(ctx, bson.M{"contactId": contactID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	addresses := make([]models.Address, 0)
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}
