package models

import "gorm.io/gorm"

type Subject struct {
	gorm.Model
	Title   string `gorm:"not null"`
	Teacher string // Преподаватель, необязательно
	GroupID uint   `gorm:"index;not null"`
}

// All lists every table for AutoMigrate.
func All() []any {
	return []any{&User{}, &Group{}, &GroupMember{}, &Subject{}, &Queue{}}
}
