package models

import "time"

// AuthToken is an opaque session credential. The unique index on UserID is
// the schema-level guarantee that a user never holds two live tokens.
type AuthToken struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
