// Package store 实现账本的全部持久化操作。
// Store 在进程启动时构造一次并注入到需要它的组件，不使用全局句柄。
package store

import (
	"time"

	"gorm.io/gorm"
)

// Store 账本存储
type Store struct {
	db *gorm.DB
}

// New 创建账本存储
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB 返回底层数据库句柄
func (s *Store) DB() *gorm.DB {
	return s.db
}

// today 截断到当天零点，付款日期只保留日期部分
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
