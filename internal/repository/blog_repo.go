package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FieldComments is the blog array owned by CommentRepository.
const FieldComments = "comments"

type CommentRepository interface {
	AddComment(ctx context.Context, blogID string, comment entities.Comment) error
	DeleteComment(ctx context.Context, blogID, commentID string) error
}

type blogCommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &blogCommentRepository{coll: db.Collection(CollectionBlogs)}
}

func (r *blogCommentRepository) AddComment(ctx context.Context, blogID string, comment entities.Comment) error {
	objectID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$push": bson.M{FieldComments: comment},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
	if err != nil {
		return fmt.Errorf("error adding comment to blog %s: %w", blogID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *blogCommentRepository) DeleteComment(ctx context.Context, blogID, commentID string) error {
	objectID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	commentObjectID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": objectID, FieldComments + "._id": commentObjectID},
		bson.M{"$pull": bson.M{FieldComments: bson.M{"_id": commentObjectID}}})
	if err != nil {
		return fmt.Errorf("error deleting comment %s: %w", commentID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
