package entity

import "time"

// KVEntry is the storefront key-value storage: cart snapshots under
// "cart:{session}" and locale selections under "lang:{session}", both as
// plain text (carts are JSON). It survives restarts the way browser
// localStorage survives reloads.
type KVEntry struct {
	Key       string    `gorm:"column:kv_key;primaryKey;type:varchar(128)"`
	Value     string    `gorm:"column:kv_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "storefront_kv"
}
