package model

// LeaderboardEntry ranks all users by total points. Keyed by user ID
// (unlike the per-quiz leaderboard) and never truncated.
type LeaderboardEntry struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex" json:"userId"`
	DisplayName string `gorm:"size:100;not null" json:"name"`
	Points      int    `gorm:"default:0" json:"points"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}
