package kv

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "bazar.GO/model/entity"
)

// KVRepository wraps the storefront_kv table. It implements cart.Storage.
type KVRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Migrate creates the storage table when absent.
func (r *KVRepository) Migrate() error {
	return r.db.AutoMigrate(&entity.KVEntry{})
}

// Get returns the value for key and whether it exists.
func (r *KVRepository) Get(key string) (string, bool, error) {
	var e entity.KVEntry
	err := r.db.First(&e, "kv_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

// Set upserts the value for key.
func (r *KVRepository) Set(key, value string) error {
	e := entity.KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"kv_value", "updated_at"}),
	}).Create(&e).Error
}

// Delete removes key. Absent keys are a no-op.
func (r *KVRepository) Delete(key string) error {
	return r.db.Delete(&entity.KVEntry{}, "kv_key = ?", key).Error
}

// DeleteOlderThan removes entries with the given key prefix not touched
// since the cutoff. The cart prune job uses it to drop abandoned carts.
func (r *KVRepository) DeleteOlderThan(prefix string, age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	res := r.db.Where("kv_key LIKE ? AND updated_at < ?", prefix+"%", cutoff).
		Delete(&entity.KVEntry{})
	return res.RowsAffected, res.Error
}
