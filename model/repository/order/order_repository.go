package order

import (
	"gorm.io/gorm"

	entity "bazar.GO/model/entity"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Migrate() error {
	return r.db.AutoMigrate(&entity.OrderLog{})
}

func (r *OrderRepository) Save(o *entity.OrderLog) error {
	return r.db.Create(o).Error
}

// List returns the most recent orders, newest first.
func (r *OrderRepository) List(limit int) ([]entity.OrderLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.OrderLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}
