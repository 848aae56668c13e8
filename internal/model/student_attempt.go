package model

import "time"

// StudentAttempt 答题流水，只追加不修改
// swagger:model StudentAttempt
type StudentAttempt struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID      uint      `gorm:"index;not null" json:"studentId"`
	QuestionID     uint      `gorm:"index;not null" json:"questionId"`
	DailySetID     string    `gorm:"type:varchar(36);index" json:"dailySetId"`
	SelectedOption string    `gorm:"size:1;not null" json:"selectedOption"` // 原始字母，而非展示字母
	IsCorrect      bool      `gorm:"not null" json:"isCorrect"`
	AttemptedAt    time.Time `gorm:"not null;index" json:"attemptedAt"`
}

func (StudentAttempt) TableName() string {
	return "student_attempts"
}
