package models

import "time"

// Tag is a browsable content label with a usage counter maintained
// atomically as questions referencing it are created and deleted.
type Tag struct {
	Name       string    `bson:"_id" json:"name"`
	Definition string    `bson:"definition" json:"definition"`
	UsageCount int64     `bson:"usage_count" json:"usage_count"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
