package entity

import (
	"time"

	"gorm.io/datatypes"
)

// OrderLog records a submitted order: the customer block plus the cart
// payload as it was sent, so the owner can reconcile against the email.
type OrderLog struct {
	OrderID   uint           `gorm:"column:order_id;primaryKey;autoIncrement"`
	Name      string         `gorm:"column:name;type:varchar(128);not null"`
	Phone     string         `gorm:"column:phone;type:varchar(32);not null"`
	Email     *string        `gorm:"column:email;type:varchar(128)"`
	Address   string         `gorm:"column:address;type:varchar(255)"`
	Message   *string        `gorm:"column:message;type:text"`
	Payload   datatypes.JSON `gorm:"column:payload"`
	Total     float64        `gorm:"column:total;not null;default:0"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (OrderLog) TableName() string {
	return "sales_order_log"
}
