package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRole = errors.New("invalid role")

// UserRole 是封闭的角色枚举，新增角色时必须同步更新 Valid 与各处 switch
type UserRole string

const (
	SuperAdmin UserRole = "SUPERADMIN"
	QAuthor    UserRole = "QAUTHOR"
	Student    UserRole = "STUDENT"
)

// Valid 判断角色是否属于已知集合
func (r UserRole) Valid() bool {
	switch r {
	case SuperAdmin, QAuthor, Student:
		return true
	default:
		return false
	}
}

// ParseRole 大小写不敏感地解析角色
func ParseRole(s string) (UserRole, error) {
	r := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// swagger:model User
type User struct {
	BaseModel
	Name             string   `gorm:"size:100;not null" json:"name"`
	Email            string   `gorm:"size:100;unique;not null" json:"email"`
	Password         string   `gorm:"size:100;not null" json:"-"`
	Role             UserRole `gorm:"type:enum('SUPERADMIN','QAUTHOR','STUDENT');default:'STUDENT';index" json:"role"`
	PrimarySubjectID *uint    `gorm:"index" json:"primarySubjectId,omitempty"`
	Disabled         bool     `gorm:"default:false" json:"disabled"`
}

func (User) TableName() string {
	return "users"
}
