package model

import (
	"encoding/json"
)

// DailyQuestionSet 每个学生每天一组题，(student_id, set_date) 唯一
// swagger:model DailyQuestionSet
type DailyQuestionSet struct {
	UUIDBase
	StudentID    uint            `gorm:"not null;uniqueIndex:idx_student_set_date,priority:1" json:"studentId"`
	SetDate      string          `gorm:"size:10;not null;uniqueIndex:idx_student_set_date,priority:2" json:"date"`
	// JSON: []uint，按题目创建时间升序
	QuestionIDs  json.RawMessage `gorm:"type:json;not null" json:"questionIds"`
	// JSON: map[questionID]OptionOrder，组题时冻结
	OptionOrders json.RawMessage `gorm:"type:json" json:"-"`
	Completed    bool            `gorm:"not null;default:false" json:"completed"`
	Score        *int            `json:"score,omitempty"`
}

func (DailyQuestionSet) TableName() string {
	return "daily_question_sets"
}

func (s *DailyQuestionSet) IDs() ([]uint, error) {
	var ids []uint
	if len(s.QuestionIDs) == 0 {
		return ids, nil
	}
	err := json.Unmarshal(s.QuestionIDs, &ids)
	return ids, err
}

func (s *DailyQuestionSet) SetIDs(ids []uint) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	s.QuestionIDs = raw
	return nil
}

// Orders 返回冻结的选项顺序，缺失的题目由调用方按 IdentityOrder 处理
func (s *DailyQuestionSet) Orders() (map[uint]OptionOrder, error) {
	orders := make(map[uint]OptionOrder)
	if len(s.OptionOrders) == 0 {
		return orders, nil
	}
	err := json.Unmarshal(s.OptionOrders, &orders)
	return orders, err
}

func (s *DailyQuestionSet) SetOrders(orders map[uint]OptionOrder) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	s.OptionOrders = raw
	return nil
}
