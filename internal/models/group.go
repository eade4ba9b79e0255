package models

import "gorm.io/gorm"

const (
	RoleStudent = "student"
	RoleHeadman = "headman"
	RoleTeacher = "teacher"
)

type Group struct {
	gorm.Model
	Name           string `gorm:"not null"`
	TelegramChatID int64  `gorm:"uniqueIndex;not null"` // ID чата группы в телеграме
	ScheduleID     string
	CreatedByID    uint          `gorm:"index"`
	Members        []GroupMember `gorm:"foreignKey:GroupID"`
}

type GroupMember struct {
	gorm.Model
	GroupID uint   `gorm:"uniqueIndex:idx_group_member;not null"`
	UserID  uint   `gorm:"uniqueIndex:idx_group_member;not null"`
	User    User   `gorm:"foreignKey:UserID"`
	Role    string `gorm:"not null"`
}
