package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"flowmate/models"
)

type ChatLogRepository struct {
	col *mongo.Collection
}

func NewChatLogRepository(db *mongo.Database) *ChatLogRepository {
	return &ChatLogRepository{col: db.Collection("chat_generation_logs")}
}

func (r *ChatLogRepository) Insert(ctx context.Context, log models.ChatGenerationLog) error {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, log)
	return err
}
