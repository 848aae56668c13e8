package repository

import (
	"errors"

	"gorm.io/gorm"
)

// translate 把 gorm 的未找到/唯一键错误映射成领域错误，其余原样返回
func translate(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	default:
		return err
	}
}
