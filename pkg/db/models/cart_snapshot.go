package models

import "time"

// CartSnapshot stores one serialized cart per storefront session. The
// payload is an opaque versioned JSON envelope owned by the cart service;
// the schema here never needs to change when the envelope does.
type CartSnapshot struct {
	SessionID string    `gorm:"column:session_id;primaryKey"`
	Version   int       `gorm:"column:version;not null"`
	Payload   string    `gorm:"column:payload;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name used by the goose migration.
func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
