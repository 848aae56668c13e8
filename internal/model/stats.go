package model

// PlatformStats 管理员统计面板
// swagger:model PlatformStats
type PlatformStats struct {
	UsersByRole     map[UserRole]int64 `json:"usersByRole"`
	Subjects        int64              `json:"subjects"`
	Questions       int64              `json:"questions"`
	DailySets       int64              `json:"dailySets"`
	CompletedSets   int64              `json:"completedSets"`
	Attempts        int64              `json:"attempts"`
	CorrectAttempts int64              `json:"correctAttempts"`
	AccuracyPercent float64            `json:"accuracyPercent"`
}
