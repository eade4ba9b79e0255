package response

import (
	"time"

	"labqueue/internal/models"
	"labqueue/internal/queue"
)

// EntryResponse запись в очереди вместе с данными студента
type EntryResponse struct {
	// Место в ранжированном списке, начиная с 1
	Place        int       `json:"place" example:"1"`
	StudentID    uint      `json:"student_id" example:"7"`
	TelegramID   int64     `json:"telegram_id,omitempty" example:"123456789"`
	Username     string    `json:"username,omitempty" example:"ivanov"`
	FullName     string    `json:"full_name,omitempty" example:"Иванов Иван"`
	LabNumber    int       `json:"lab_number" example:"3"`
	Status       string    `json:"status" example:"waiting"`
	AttemptsUsed int       `json:"attempts_used" example:"0"`
	Position     *int      `json:"position,omitempty" example:"4"`
	JoinedAt     time.Time `json:"joined_at"`
}

// QueueResponse снимок сессии очереди
type QueueResponse struct {
	ID        uint            `json:"id" example:"1"`
	SubjectID uint            `json:"subject_id" example:"2"`
	IsActive  bool            `json:"is_active" example:"true"`
	Version   int64           `json:"version" example:"5"`
	CreatedAt time.Time       `json:"created_at"`
	Config    queue.Config    `json:"config"`
	MinLab    *int            `json:"min_lab,omitempty" example:"2"`
	Entries   []EntryResponse `json:"entries"`
}

// QueueSummary строка истории сессий
type QueueSummary struct {
	ID        uint      `json:"id" example:"1"`
	SubjectID uint      `json:"subject_id" example:"2"`
	IsActive  bool      `json:"is_active" example:"false"`
	Entries   int       `json:"entries" example:"12"`
	CreatedAt time.Time `json:"created_at"`
}

// JoinResponse ответ на вступление в очередь
type JoinResponse struct {
	Message string        `json:"message" example:"Вы записаны в очередь"`
	Entry   EntryResponse `json:"entry"`
	Queue   QueueResponse `json:"queue"`
}

// NewEntry собирает запись; users может не содержать студента.
func NewEntry(place int, e queue.Entry, users map[uint]models.User) EntryResponse {
	out := EntryResponse{
		Place:        place,
		StudentID:    e.StudentID,
		LabNumber:    e.LabNumber,
		Status:       string(e.Status),
		AttemptsUsed: e.AttemptsUsed,
		Position:     e.Position,
		JoinedAt:     e.JoinedAt,
	}
	if u, ok := users[e.StudentID]; ok {
		out.TelegramID = u.TelegramID
		out.Username = u.Username
		out.FullName = u.FullName
	}
	return out
}

func NewQueue(q *queue.Queue, users map[uint]models.User) QueueResponse {
	out := QueueResponse{
		ID:        q.ID,
		SubjectID: q.SubjectID,
		IsActive:  q.IsActive,
		Version:   q.Version,
		CreatedAt: q.CreatedAt,
		Config:    q.Config,
		Entries:   make([]EntryResponse, 0, len(q.Entries)),
	}
	if minLab, ok := q.MinActiveLab(); ok {
		out.MinLab = &minLab
	}
	for i, e := range q.Entries {
		out.Entries = append(out.Entries, NewEntry(i+1, e, users))
	}
	return out
}

func NewSummary(q *queue.Queue) QueueSummary {
	return QueueSummary{
		ID:        q.ID,
		SubjectID: q.SubjectID,
		IsActive:  q.IsActive,
		Entries:   len(q.Entries),
		CreatedAt: q.CreatedAt,
	}
}

// PlaceOf возвращает место студента в снимке, 0 если его нет.
func PlaceOf(q *queue.Queue, studentID uint) int {
	for i, e := range q.Entries {
		if e.StudentID == studentID {
			return i + 1
		}
	}
	return 0
}
