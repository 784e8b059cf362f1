package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"promptlens/internal/model"
)

// AnalysisRepo persists finished analyses as browsable history
type AnalysisRepo interface {
	Create(ctx context.Context, result *model.AnalysisResult) error
	GetByID(ctx context.Context, id string) (*model.AnalysisResult, error)
	ListRecent(ctx context.Context, limit int) ([]*model.AnalysisResult, error)
}

type analysisRepo struct {
	collection *mongo.Collection
}

func NewAnalysisRepo(db *mongo.Database) AnalysisRepo {
	return &analysisRepo{
		collection: db.Collection("analyses"),
	}
}

func (r *analysisRepo) Create(ctx context.Context, result *model.AnalysisResult) error {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	inserted, err := r.collection.InsertOne(ctx, result)
	if err != nil {
		return err
	}

	if oid, ok := inserted.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid.Hex()
	}

	return nil
}

func (r *analysisRepo) GetByID(ctx context.Context, id string) (*model.AnalysisResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var result model.AnalysisResult
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *analysisRepo) ListRecent(ctx context.Context, limit int) ([]*model.AnalysisResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.AnalysisResult
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}
