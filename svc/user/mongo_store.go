package user

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	mongodb "github.com/dmitrymomot/myflix/pkg/mongo"
)

// CollectionName is the MongoDB collection holding users.
const CollectionName = "users"

// MongoStore is a Store backed by a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a store using the users collection of db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the unique Username index. Safe to call on every start.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "Username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("user: ensure indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, u *User) (*User, error) {
	doc := u.clone()
	if doc.ID.IsZero() {
		doc.ID = bson.NewObjectID()
	}
	if doc.FavoriteMovies == nil {
		doc.FavoriteMovies = []bson.ObjectID{}
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, mapError("create", err)
	}
	return doc, nil
}

func (s *MongoStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.findOne(ctx, "find by username", bson.D{{Key: "Username", Value: username}})
}

func (s *MongoStore) FindByID(ctx context.Context, id bson.ObjectID) (*User, error) {
	return s.findOne(ctx, "find by id", bson.D{{Key: "_id", Value: id}})
}

func (s *MongoStore) Update(ctx context.Context, id bson.ObjectID, changes Changes) (*User, error) {
	if changes.IsEmpty() {
		return s.FindByID(ctx, id)
	}
	return s.findOneAndUpdate(ctx, "update", id, bson.D{{Key: "$set", Value: setDocument(changes)}})
}

func (s *MongoStore) AddFavorite(ctx context.Context, id, movieID bson.ObjectID) (*User, error) {
	return s.findOneAndUpdate(ctx, "add favorite", id,
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: "FavoriteMovies", Value: movieID}}}})
}

func (s *MongoStore) RemoveFavorite(ctx context.Context, id, movieID bson.ObjectID) (*User, error) {
	return s.findOneAndUpdate(ctx, "remove favorite", id,
		bson.D{{Key: "$pull", Value: bson.D{{Key: "FavoriteMovies", Value: movieID}}}})
}

func (s *MongoStore) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return mapError("delete", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) findOne(ctx context.Context, op string, filter bson.D) (*User, error) {
	var u User
	if err := s.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, mapError(op, err)
	}
	return &u, nil
}

func (s *MongoStore) findOneAndUpdate(ctx context.Context, op string, id bson.ObjectID, update bson.D) (*User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u User
	err := s.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&u)
	if err != nil {
		return nil, mapError(op, err)
	}
	return &u, nil
}

// setDocument builds the $set body for changes, in field order.
func setDocument(changes Changes) bson.D {
	var set bson.D
	if changes.Username != nil {
		set = append(set, bson.E{Key: "Username", Value: *changes.Username})
	}
	if changes.PasswordHash != nil {
		set = append(set, bson.E{Key: "Password", Value: *changes.PasswordHash})
	}
	if changes.Email != nil {
		set = append(set, bson.E{Key: "Email", Value: *changes.Email})
	}
	if changes.Birthday != nil {
		set = append(set, bson.E{Key: "Birthday", Value: *changes.Birthday})
	}
	return set
}

// mapError translates driver errors into the package sentinels.
func mapError(op string, err error) error {
	switch {
	case mongodb.IsNotFound(err):
		return ErrNotFound
	case mongodb.IsDuplicateKey(err):
		return ErrConflict
	default:
		return fmt.Errorf("user: %s: %w", op, err)
	}
}
