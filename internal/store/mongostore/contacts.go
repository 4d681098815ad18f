package mongostore

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"contactbook/internal/models"
	"contactbook/internal/store"
)

type ContactStore struct {
	db *mongo.Database
}

func (s *ContactStore) collection() *mongo.Collection {
	return s.db.Collection("contacts")
}

func (s *ContactStore) Create(ctx context.Context, contact *models.Contact) error {
	id, err := nextID(ctx, s.db, "contacts")
	if err != nil {
		return err
	}

	now := time.Now()
	contact.ID = id
	contact.CreatedAt = now
	contact.UpdatedAt = now

	_, err = s.collection().InsertOne(ctx, contact)
	return err
}

func (s *ContactStore) FindByID(ctx context.Context, userID, contactID int64) (*models.Contact, error) {
	var contact models.Contact
	err := s.collection().FindOne(ctx, bson.M{"_id": contactID, "userId": userID}).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (s *ContactStore) Update(ctx context.Context, contact *models.Contact) error {
	contact.UpdatedAt = time.Now()

	res, err := s.collection().ReplaceOne(ctx,
		bson.M{"_id": contact.ID, "userId": contact.UserID}, contact)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes the contact and cascades to its addresses.
func (s *ContactStore) Delete(ctx context.Context, contact *models.Contact) error {
	res, err := s.collection().DeleteOne(ctx,
		bson.M{"_id": contact.ID, "userId": contact.UserID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}

	_, err = s.db.Collection("addresses").DeleteMany(ctx, bson.M{"contactId": contact.ID})
	return err
}

func (s *ContactStore) Search(ctx context.Context, userID int64, filter store.ContactFilter, page store.Page) ([]models.Contact, int64, error) {
	query := searchFilter(userID, filter)

	total, err := s.collection().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip((page.Number - 1) * page.Size).
		SetLimit(page.Size)

	cursor, err := s.collection().Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	// No capacity hint: page.Size is caller input and must not drive an
	// allocation.
	contacts := make([]models.Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// searchFilter builds the ownership-scoped conjunction of the optional
// predicates. Filter input is quoted so it matches literally.
func searchFilter(userID int64, filter store.ContactFilter) bson.M {
	query := bson.M{"userId": userID}

	clauses := make([]bson.M, 0, 3)
	if filter.Name != "" {
		pattern := containsPattern(filter.Name)
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"firstName": pattern},
			{"lastName": pattern},
		}})
	}
	if filter.Phone != "" {
		clauses = append(clauses, bson.M{"phone": containsPattern(filter.Phone)})
	}
	if filter.Email != "" {
		clauses = append(clauses, bson.M{"email": containsPattern(filter.Email)})
	}
	if len(clauses) > 0 {
		query["$and"] = clauses
	}
	return query
}

func containsPattern(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}
