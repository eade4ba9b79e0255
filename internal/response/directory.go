package response

import "labqueue/internal/models"

type UserResponse struct {
	ID         uint   `json:"id" example:"1"`
	TelegramID int64  `json:"telegram_id" example:"123456789"`
	Username   string `json:"username,omitempty" example:"ivanov"`
	FullName   string `json:"full_name" example:"Иванов Иван"`
	GlobalRole string `json:"global_role" example:"user"`
	Created    bool   `json:"created" example:"true"`
}

type MemberResponse struct {
	UserID uint   `json:"user_id" example:"1"`
	Role   string `json:"role" example:"student"`
}

type GroupResponse struct {
	ID             uint             `json:"id" example:"1"`
	Name           string           `json:"name" example:"ПИ-21"`
	TelegramChatID int64            `json:"telegram_chat_id" example:"-1001234567890"`
	Members        []MemberResponse `json:"members"`
}

type SubjectResponse struct {
	ID      uint   `json:"id" example:"1"`
	Title   string `json:"title" example:"Операционные системы"`
	Teacher string `json:"teacher,omitempty" example:"Петров П.П."`
	GroupID uint   `json:"group_id" example:"1"`
}

func NewUser(u models.User, created bool) UserResponse {
	return UserResponse{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		Username:   u.Username,
		FullName:   u.FullName,
		GlobalRole: u.GlobalRole,
		Created:    created,
	}
}

func NewGroup(g models.Group) GroupResponse {
	out := GroupResponse{
		ID:             g.ID,
		Name:           g.Name,
		TelegramChatID: g.TelegramChatID,
		Members:        make([]MemberResponse, 0, len(g.Members)),
	}
	for _, m := range g.Members {
		out.Members = append(out.Members, MemberResponse{UserID: m.UserID, Role: m.Role})
	}
	return out
}

func NewSubject(s models.Subject) SubjectResponse {
	return SubjectResponse{ID: s.ID, Title: s.Title, Teacher: s.Teacher, GroupID: s.GroupID}
}
