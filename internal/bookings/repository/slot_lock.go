package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "github.com/ppuranik79/Meeting-Room-Booking/internal/bookings/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/config"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/model"
)

const LockCollectionName = "Slot_locks"

// SlotLockRepository hands out advisory locks keyed by (room, date). The
// unique _id makes a second concurrent Acquire fail with ErrLockHeld; a TTL
// index on expires_at reaps locks leaked by crashed requests.
type SlotLockRepository interface {
	Acquire(ctx context.Context, lock *model.SlotLock) error
	Release(ctx context.Context, lockID string) error
}

type mongoSlotLockRepository struct {
	collection *mongo.Collection
}

func NewSlotLockRepository(cfg *config.Config) SlotLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSlotLockRepository{
		collection: db.Collection(LockCollectionName),
	}
}

func (r *mongoSlotLockRepository) Acquire(ctx context.Context, lock *model.SlotLock) error {
	lock.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return bookingserrors.ErrLockHeld
		}
		return err
	}

	return nil
}

func (r *mongoSlotLockRepository) Release(ctx context.Context, lockID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}
