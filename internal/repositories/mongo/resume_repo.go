package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/models"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ResumesCollection = "resumes"

type ResumeRepository interface {
	// Create inserts r and returns the new document id as hex.
	Create(ctx context.Context, r *models.Resume) (string, error)
	GetByID(ctx context.Context, userID, id string) (*models.Resume, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.ResumeSummary, error)
	Delete(ctx context.Context, userID, id string) error
}

type resumeRepo struct {
	col *mongo.Collection
}

func NewResumeRepo(db *mongo.Database) ResumeRepository {
	return &resumeRepo{col: db.Collection(ResumesCollection)}
}

func (r *resumeRepo) Create(ctx context.Context, res *models.Resume) (string, error) {
	if res.ID.IsZero() {
		res.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	if res.UpdatedAt.IsZero() {
		res.UpdatedAt = res.CreatedAt
	}
	if _, err := r.col.InsertOne(ctx, res); err != nil {
		return "", err
	}
	return res.ID.Hex(), nil
}

// GetByID only matches documents owned by userID. A malformed id is reported
// as not found.
func (r *resumeRepo) GetByID(ctx context.Context, userID, id string) (*models.Resume, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}
	var res models.Resume
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resumeRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.ResumeSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"_id": 1, "title": 1, "created_at": 1, "updated_at": 1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ResumeSummary{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resumeRepo) Delete(ctx context.Context, userID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
