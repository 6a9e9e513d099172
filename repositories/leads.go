package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flowmate/models"
)

type LeadRepository struct {
	col *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{col: db.Collection("leads")}
}

func (r *LeadRepository) Insert(ctx context.Context, lead models.Lead) (models.Lead, error) {
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, lead)
	if err != nil {
		return models.Lead{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		lead.ID = oid
	}
	return lead, nil
}

// ListRecent 는 최근 제출된 리드를 최신순으로 조회한다.
func (r *LeadRepository) ListRecent(ctx context.Context, limit int64) ([]models.Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var leads []models.Lead
	if err := cur.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}
