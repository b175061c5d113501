package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentRepository is the document-store CRUD shared by every content entity.
type ContentRepository[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, filter map[string]interface{}) ([]T, error)
	Create(ctx context.Context, payload *T) (*T, error)
	Update(ctx context.Context, id string, payload *T) (*T, error)
	Delete(ctx context.Context, id string) error
	First(ctx context.Context) (*T, error)
	Upsert(ctx context.Context, payload *T) (*T, error)
}

type mongoRepository[T any] struct {
	coll      *mongo.Collection
	now       func() time.Time
	ownArrays []string
}

// NewContentRepository returns the CRUD repository of a collection.
// ownArrays names array fields maintained by $push/$pull elsewhere: they are
// created empty and never overwritten by Update or Upsert.
func NewContentRepository[T any](db *mongo.Database, collection string, ownArrays ...string) ContentRepository[T] {
	return &mongoRepository[T]{coll: db.Collection(collection), now: time.Now, ownArrays: ownArrays}
}

// Get returns nil, nil when the id is unknown or malformed.
func (r *mongoRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc T
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading %s %s: %w", r.coll.Name(), id, err)
	}
	return &doc, nil
}

func (r *mongoRepository[T]) List(ctx context.Context, filter map[string]interface{}) ([]T, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", r.coll.Name(), err)
	}
	return docs, nil
}

func (r *mongoRepository[T]) Create(ctx context.Context, payload *T) (*T, error) {
	doc, err := toDocument(payload)
	if err != nil {
		return nil, err
	}
	now := r.now().UTC()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	for _, field := range r.ownArrays {
		doc[field] = bson.A{}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, r.duplicate()
		}
		return nil, fmt.Errorf("error inserting into %s: %w", r.coll.Name(), err)
	}
	objectID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return r.Get(ctx, objectID.Hex())
}

func (r *mongoRepository[T]) Update(ctx context.Context, id string, payload *T) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	doc, err := toDocument(payload)
	if err != nil {
		return nil, err
	}
	r.dropOwnArrays(doc)
	doc["updatedAt"] = r.now().UTC()

	var updated T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": doc}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, r.duplicate()
		}
		return nil, fmt.Errorf("error updating %s %s: %w", r.coll.Name(), id, err)
	}
	return &updated, nil
}

func (r *mongoRepository[T]) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting %s %s: %w", r.coll.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// First returns the single document of a singleton collection, or nil.
func (r *mongoRepository[T]) First(ctx context.Context) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading %s: %w", r.coll.Name(), err)
	}
	return &doc, nil
}

// Upsert replaces the fields of the singleton document, creating it if needed.
func (r *mongoRepository[T]) Upsert(ctx context.Context, payload *T) (*T, error) {
	doc, err := toDocument(payload)
	if err != nil {
		return nil, err
	}
	now := r.now().UTC()
	r.dropOwnArrays(doc)
	doc["updatedAt"] = now

	var saved T
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	update := bson.M{"$set": doc, "$setOnInsert": bson.M{"createdAt": now}}
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("error saving %s: %w", r.coll.Name(), err)
	}
	return &saved, nil
}

func (r *mongoRepository[T]) duplicate() error {
	return fmt.Errorf("a record with the same key already exists in %s: %w", r.coll.Name(), apperrors.ErrConflict)
}

func (r *mongoRepository[T]) dropOwnArrays(doc bson.M) {
	delete(doc, "createdAt")
	for _, field := range r.ownArrays {
		delete(doc, field)
	}
}

// toDocument marshals a payload through its bson tags and drops _id so the
// stored id never changes.
func toDocument(payload interface{}) (bson.M, error) {
	raw, err := bson.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error encoding document: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	delete(doc, "_id")
	return doc, nil
}
