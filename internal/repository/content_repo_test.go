package repository

import (
	"context"
	"testing"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestContentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get returns nil for malformed id", func(mt *mtest.T) {
		repo := NewContentRepository[entities.Destination](mt.DB, CollectionDestinations)
		d, err := repo.Get(context.Background(), "not-an-object-id")
		assert.NoError(mt, err)
		assert.Nil(mt, d)
	})

	mt.Run("get decodes document", func(mt *mtest.T) {
		repo := NewContentRepository[entities.Destination](mt.DB, CollectionDestinations)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tour.destinations", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Kandy"},
			{Key: "lat", Value: 7.2906},
		}))

		d, err := repo.Get(context.Background(), id.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, d)
		assert.Equal(mt, "Kandy", d.Name)
		assert.Equal(mt, 7.2906, d.Lat)
	})

	mt.Run("get returns nil when missing", func(mt *mtest.T) {
		repo := NewContentRepository[entities.Destination](mt.DB, CollectionDestinations)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tour.destinations", mtest.FirstBatch))

		d, err := repo.Get(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
		assert.Nil(mt, d)
	})

	mt.Run("create inserts then reloads", func(mt *mtest.T) {
		repo := NewContentRepository[entities.Taxi](mt.DB, CollectionTaxis)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "tour.taxis", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "Prius"},
				{Key: "seats", Value: 3},
			}),
		)

		taxi, err := repo.Create(context.Background(), &entities.Taxi{Name: "Prius", Seats: 3})
		require.NoError(mt, err)
		assert.Equal(mt, "Prius", taxi.Name)
		assert.Equal(mt, 3, taxi.Seats)
	})

	mt.Run("delete reports not found", func(mt *mtest.T) {
		repo := NewContentRepository[entities.Blog](mt.DB, CollectionBlogs)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("delete ok", func(mt *mtest.T) {
		repo := NewContentRepository[entities.Blog](mt.DB, CollectionBlogs)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Delete(context.Background(), primitive.NewObjectID().Hex()))
	})

	mt.Run("update of malformed id is not found", func(mt *mtest.T) {
		repo := NewContentRepository[entities.Blog](mt.DB, CollectionBlogs)
		_, err := repo.Update(context.Background(), "zzz", &entities.Blog{Title: "x"})
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})
}

func TestContentRepository_BlogComments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create starts with an empty comments array", func(mt *mtest.T) {
		repo := NewContentRepository[entities.Blog](mt.DB, CollectionBlogs, FieldComments)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "tour.blogs", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "title", Value: "Ella"},
				{Key: "comments", Value: bson.A{}},
			}),
		)

		blog, err := repo.Create(context.Background(), &entities.Blog{Title: "Ella"})
		require.NoError(mt, err)
		assert.Equal(mt, "Ella", blog.Title)

		insert := mt.GetStartedEvent()
		require.NotNil(mt, insert)
		require.Equal(mt, "insert", insert.CommandName)
		comments, err := insert.Command.LookupErr("documents", "0", "comments")
		require.NoError(mt, err)
		assert.Equal(mt, bson.TypeArray, comments.Type)
	})

	mt.Run("update leaves comments alone", func(mt *mtest.T) {
		repo := NewContentRepository[entities.Blog](mt.DB, CollectionBlogs, FieldComments)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Ella rewritten"},
		}}))

		blog, err := repo.Update(context.Background(), id.Hex(), &entities.Blog{Title: "Ella rewritten"})
		require.NoError(mt, err)
		assert.Equal(mt, "Ella rewritten", blog.Title)

		update := mt.GetStartedEvent()
		require.NotNil(mt, update)
		require.Equal(mt, "findAndModify", update.CommandName)
		set, err := update.Command.LookupErr("update", "$set")
		require.NoError(mt, err)
		_, err = set.Document().LookupErr("comments")
		assert.Error(mt, err)
		_, err = set.Document().LookupErr("title")
		assert.NoError(mt, err)
	})
}

func TestToDocumentDropsID(t *testing.T) {
	doc, err := toDocument(&entities.Destination{ID: primitive.NewObjectID(), Name: "Galle"})
	require.NoError(t, err)
	_, hasID := doc["_id"]
	assert.False(t, hasID)
	assert.Equal(t, "Galle", doc["name"])
}

func TestContentRepository_DuplicateKey(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create reports conflict", func(mt *mtest.T) {
		repo := NewContentRepository[entities.TourPrice](mt.DB, CollectionTourPrices)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: tour.tour_prices index: tour_type_name_unique",
		}))

		_, err := repo.Create(context.Background(), &entities.TourPrice{TourType: entities.DayTour, Name: "Kandy Day Tour", UnitPrice: 15000})
		assert.ErrorIs(mt, err, apperrors.ErrConflict)
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unique tour price name per type", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "createIndexes", evt.CommandName)
		unique, err := evt.Command.LookupErr("indexes", "0", "unique")
		require.NoError(mt, err)
		assert.True(mt, unique.Boolean())
		keys, err := evt.Command.LookupErr("indexes", "0", "key")
		require.NoError(mt, err)
		assert.Contains(mt, keys.String(), "tourType")
	})

	mt.Run("error is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 86, Message: "index key specs conflict"}))

		err := EnsureIndexes(context.Background(), mt.DB)
		assert.ErrorContains(mt, err, "tour_prices")
	})
}
