package model

// Subject 考试科目，名称全局唯一
// swagger:model Subject
type Subject struct {
	BaseModel
	Name         string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	ExamCategory string `gorm:"size:100;not null" json:"examCategory"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
}

func (Subject) TableName() string {
	return "subjects"
}
