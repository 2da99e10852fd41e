package models

import "gorm.io/gorm"

// ReputationEntry records one applied reputation delta. Applied may be
// smaller than Amount when the daily upvote cap truncates a credit.
type ReputationEntry struct {
	gorm.Model
	UserID      uint   `gorm:"column:user_id;not null;index" json:"user_id"`
	Amount      int    `gorm:"column:amount;not null" json:"amount"`
	Applied     int    `gorm:"column:applied;not null" json:"applied"`
	Reason      string `gorm:"column:reason;not null" json:"reason"`
	TargetType  string `gorm:"column:target_type" json:"target_type"`
	TargetID    string `gorm:"column:target_id;index" json:"target_id"`
	DailyBucket string `gorm:"column:daily_bucket;index" json:"daily_bucket"`
}

func (ReputationEntry) TableName() string {
	return "reputation_entries"
}
