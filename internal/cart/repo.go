package cart

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/velora-motors/storefront-backend/pkg/db"
	"github.com/velora-motors/storefront-backend/pkg/db/models"
)

// SnapshotStore is the persistence port for serialized carts. One row per
// session; every save overwrites the previous snapshot.
type SnapshotStore interface {
	Load(ctx context.Context, sessionID string) (*models.CartSnapshot, error)
	Save(ctx context.Context, snapshot *models.CartSnapshot) error
	Delete(ctx context.Context, sessionID string) error
}

type gormSnapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore builds the GORM-backed snapshot store.
func NewSnapshotStore(client *db.Client) (SnapshotStore, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &gormSnapshotStore{db: client.DB()}, nil
}

func (r *gormSnapshotStore) Load(ctx context.Context, sessionID string) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *gormSnapshotStore) Save(ctx context.Context, snapshot *models.CartSnapshot) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"version", "payload", "updated_at"}),
		}).
		Create(snapshot).Error
}

func (r *gormSnapshotStore) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.CartSnapshot{}).Error
}
