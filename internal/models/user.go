package models

import "gorm.io/gorm"

const (
	GlobalRoleOwner = "owner"
	GlobalRoleUser  = "user"
)

type User struct {
	gorm.Model
	TelegramID int64 `gorm:"uniqueIndex;not null"`
	Username   string
	FullName   string `gorm:"not null"`
	GlobalRole string `gorm:"not null"` // owner у первого зарегистрированного, иначе user
}
