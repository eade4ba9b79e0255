package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Queue is one defense session of a subject. Sessions are never deleted: a new
// one deactivates the previous ones and they stay as history.
type Queue struct {
	gorm.Model
	SubjectID uint  `gorm:"index;not null"`
	IsActive  bool  `gorm:"index;default:false"` // Принимает ли очередь новые записи
	Version   int64 `gorm:"not null;default:0"`  // Растёт на каждую запись, используется для CAS

	MaxSlots            int  `gorm:"not null"`
	MinMaxRule          bool `gorm:"not null"`
	PriorityMinLab      bool `gorm:"not null"`
	MaxAttempts         int  `gorm:"not null"`
	PriorityCohortLimit int  `gorm:"not null"`
	StrictTransitions   bool `gorm:"not null"`

	// Entries хранятся одним JSON-значением в порядке ранжирования.
	Entries datatypes.JSONSlice[QueueEntry] `gorm:"not null"`
}

// QueueEntry is one element of Queue.Entries.
type QueueEntry struct {
	UserID       uint      `json:"user_id"`
	LabNumber    int       `json:"lab_number"`
	JoinedAt     time.Time `json:"joined_at"`
	Status       string    `json:"status"`
	AttemptsUsed int       `json:"attempts_used"`
	Position     *int      `json:"position,omitempty"` // Выбранное место, nil если не выбирал
}
