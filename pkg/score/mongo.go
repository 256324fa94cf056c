package score

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/stacker/pkg/errors"
)

// MongoConfig contains connection settings for a MongoDB store.
type MongoConfig struct {
	URI        string // e.g. mongodb://localhost:27017
	Database   string // e.g. stacker
	Collection string // e.g. highscores
}

// MongoStore keeps one document per profile, keyed by profile name.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	profile    string
}

// NewMongoStore connects to MongoDB and pings the primary.
func NewMongoStore(ctx context.Context, cfg MongoConfig, profile string) (*MongoStore, error) {
	if cfg.URI == "" {
		cfg.URI = "mongodb://localhost:27017"
	}
	if cfg.Database == "" {
		cfg.Database = "stacker"
	}
	if cfg.Collection == "" {
		cfg.Collection = "highscores"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "ping mongo")
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		profile:    profile,
	}, nil
}

func (s *MongoStore) Load(ctx context.Context) (int, error) {
	var rec Record
	err := retry(ctx, mongoTransient, func() error {
		return s.collection.FindOne(ctx, bson.M{"_id": s.profile}).Decode(&rec)
	})
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "find high score")
	}
	return rec.Score, nil
}

func (s *MongoStore) Save(ctx context.Context, score int) error {
	update := bson.M{"$set": bson.M{"score": score, "updated_at": time.Now().UTC()}}
	opts := options.Update().SetUpsert(true)

	err := retry(ctx, mongoTransient, func() error {
		_, err := s.collection.UpdateOne(ctx, bson.M{"_id": s.profile}, update, opts)
		return err
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "upsert high score")
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)

func mongoTransient(err error) bool {
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
