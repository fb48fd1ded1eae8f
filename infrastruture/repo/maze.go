package repo

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo stores generated mazes in MongoDB.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a MazeRepo backed by dbName.collectionName.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the owner listing index.
func (m *MazeRepo) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts the record or replaces the one with the same ID.
func (m *MazeRepo) Save(ctx context.Context, record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := m.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts); err != nil {
		return fmt.Errorf("saving maze: %w", err)
	}
	return nil
}

// ByID retrieves a maze by its ID.
func (m *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var record dmn.MazeRecord
	if err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("finding maze: %w", err)
	}
	return &record, nil
}

// ByOwner lists up to limit mazes of owner, newest first.
func (m *MazeRepo) ByOwner(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := m.collection.Find(ctx, bson.M{"ownerId": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing mazes: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]*dmn.MazeRecord, 0, limit)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decoding mazes: %w", err)
	}
	return records, nil
}

// Delete removes the maze with id if owner owns it.
func (m *MazeRepo) Delete(ctx context.Context, id, owner uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": owner})
	if err != nil {
		return fmt.Errorf("deleting maze: %w", err)
	}
	if res.DeletedCount == 0 {
		return dmn.ErrMazeNotFound
	}
	return nil
}
