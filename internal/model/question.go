package model

import (
	"math/rand"
	"strings"
)

type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

// OptionKeys 题目固定四个选项
const OptionKeys = "ABCD"

// ValidOption 判断是否为 A-D 之一
func ValidOption(key string) bool {
	return len(key) == 1 && strings.Contains(OptionKeys, key)
}

// swagger:model Question
type Question struct {
	BaseModel
	Title         string     `gorm:"size:255;not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	OptionA       string     `gorm:"type:text;not null" json:"optionA"`
	OptionB       string     `gorm:"type:text;not null" json:"optionB"`
	OptionC       string     `gorm:"type:text;not null" json:"optionC"`
	OptionD       string     `gorm:"type:text;not null" json:"optionD"`
	CorrectOption string     `gorm:"size:1;not null" json:"correctOption"`
	Difficulty    Difficulty `gorm:"type:enum('EASY','MEDIUM','HARD');default:'MEDIUM'" json:"difficulty"`
	SubjectID     uint       `gorm:"index;not null" json:"subjectId"`
	CreatorID     uint       `gorm:"index;not null" json:"creatorId"`
	ImageURL      string     `gorm:"size:255" json:"imageUrl,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionText 按原始字母取选项内容
func (q *Question) OptionText(key string) string {
	switch key {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// OptionOrder 记录展示顺序：第 i 个展示字母对应的原始字母为 o[i]
type OptionOrder string

const IdentityOrder OptionOrder = OptionKeys

// ShuffledOrder 生成一个随机排列
func ShuffledOrder(r *rand.Rand) OptionOrder {
	keys := []byte(OptionKeys)
	r.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return OptionOrder(keys)
}

// Valid 必须恰好是 ABCD 的一个排列
func (o OptionOrder) Valid() bool {
	if len(o) != len(OptionKeys) {
		return false
	}
	for _, k := range OptionKeys {
		if strings.Count(string(o), string(k)) != 1 {
			return false
		}
	}
	return true
}

// Original 把展示字母换算回题目原始字母
func (o OptionOrder) Original(display string) (string, bool) {
	if !ValidOption(display) {
		return "", false
	}
	if !o.Valid() {
		o = IdentityOrder
	}
	idx := strings.Index(OptionKeys, display)
	return string(o[idx]), true
}
