package mongo_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	drv "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/myflix/pkg/mongo"
)

func TestIsDuplicateKey(t *testing.T) {
	t.Parallel()

	dup := drv.WriteException{WriteErrors: []drv.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}
	assert.True(t, mongo.IsDuplicateKey(dup))
	assert.True(t, mongo.IsDuplicateKey(fmt.Errorf("insert user: %w", dup)))

	other := drv.WriteException{WriteErrors: []drv.WriteError{{Code: 121, Message: "document failed validation"}}}
	assert.False(t, mongo.IsDuplicateKey(other))
	assert.False(t, mongo.IsDuplicateKey(errors.New("boom")))
	assert.False(t, mongo.IsDuplicateKey(nil))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, mongo.IsNotFound(drv.ErrNoDocuments))
	assert.True(t, mongo.IsNotFound(fmt.Errorf("find: %w", drv.ErrNoDocuments)))
	assert.False(t, mongo.IsNotFound(errors.New("boom")))
}

func TestNew_Failures(t *testing.T) {
	t.Parallel()

	t.Run("invalid uri", func(t *testing.T) {
		t.Parallel()
		_, err := mongo.New(context.Background(), mongo.Config{ConnectionURL: "not-a-uri", RetryAttempts: 1})
		assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()
		_, err := mongo.NewWithDatabase(context.Background(), mongo.Config{
			ConnectionURL:  "mongodb://127.0.0.1:1/?directConnection=true",
			Database:       "myflixDB",
			ConnectTimeout: 200 * time.Millisecond,
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
		})
		assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
	})
}
