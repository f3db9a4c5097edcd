package movie

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	mongodb "github.com/dmitrymomot/myflix/pkg/mongo"
)

// CollectionName is the MongoDB collection holding movies.
const CollectionName = "movies"

// MongoStore is a Store backed by a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a store using the movies collection of db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the unique Title index and the lookup indexes used by
// ByGenre and ByDirector.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "Title", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("title_unique"),
		},
		{Keys: bson.D{{Key: "Genre.Name", Value: 1}}, Options: options.Index().SetName("genre_name")},
		{Keys: bson.D{{Key: "Director.Name", Value: 1}}, Options: options.Index().SetName("director_name")},
	})
	if err != nil {
		return fmt.Errorf("movie: ensure indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]Movie, error) {
	return s.find(ctx, "list", bson.D{})
}

func (s *MongoStore) ByTitle(ctx context.Context, title string) (*Movie, error) {
	return s.findOne(ctx, "by title", bson.D{{Key: "Title", Value: title}})
}

func (s *MongoStore) ByGenre(ctx context.Context, name string) ([]Movie, error) {
	movies, err := s.find(ctx, "by genre", bson.D{{Key: "Genre.Name", Value: name}})
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrGenreNotFound
	}
	return movies, nil
}

func (s *MongoStore) ByDirector(ctx context.Context, name string) ([]Movie, error) {
	movies, err := s.find(ctx, "by director", bson.D{{Key: "Director.Name", Value: name}})
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrDirectorNotFound
	}
	return movies, nil
}

func (s *MongoStore) ByID(ctx context.Context, id bson.ObjectID) (*Movie, error) {
	return s.findOne(ctx, "by id", bson.D{{Key: "_id", Value: id}})
}

func (s *MongoStore) Upsert(ctx context.Context, m *Movie) (*Movie, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	doc := m.clone()
	doc.ID = bson.ObjectID{}
	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)

	var stored Movie
	err := s.coll.FindOneAndReplace(ctx, bson.D{{Key: "Title", Value: m.Title}}, doc, opts).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("movie: upsert %q: %w", m.Title, err)
	}
	return &stored, nil
}

func (s *MongoStore) find(ctx context.Context, op string, filter bson.D) ([]Movie, error) {
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "Title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("movie: %s: %w", op, err)
	}

	var movies []Movie
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("movie: %s: decode: %w", op, err)
	}
	if movies == nil {
		movies = []Movie{}
	}
	return movies, nil
}

func (s *MongoStore) findOne(ctx context.Context, op string, filter bson.D) (*Movie, error) {
	var m Movie
	if err := s.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if mongodb.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("movie: %s: %w", op, err)
	}
	return &m, nil
}
