package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"labqueue/internal/auth"
	"labqueue/internal/queue"
)

// UserQueueItem одна активная запись пользователя
type UserQueueItem struct {
	QueueID      uint   `json:"queue_id" example:"1"`
	SubjectID    uint   `json:"subject_id" example:"2"`
	SubjectTitle string `json:"subject_title" example:"Операционные системы"`
	GroupName    string `json:"group_name" example:"ПИ-21"`
	Place        int    `json:"place" example:"3"`
	LabNumber    int    `json:"lab_number" example:"2"`
	Status       string `json:"status" example:"waiting"`
	IsActive     bool   `json:"is_active" example:"true"`
}

// GetUserQueuesHandler godoc
// @Summary		Получение списка своих очередей
// @Description	Активные сессии предметов групп пользователя, в которых у него есть запись
// @Tags			profile
// @Produce		json
// @Security		TelegramID
// @Success		200	{array}		UserQueueItem
// @Failure		404	{object}	response.ErrorResponse	"USER_NOT_FOUND"
// @Router			/api/profile/queues [get]
func (h *Handler) GetUserQueuesHandler(c *gin.Context) {
	ctx := c.Request.Context()
	callerID := auth.CallerID(c)

	user, err := h.dir.FindUserByTelegramID(ctx, callerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	groups, err := h.dir.MyGroups(ctx, callerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	items := []UserQueueItem{}
	for _, g := range groups {
		subjects, err := h.dir.SubjectsByGroup(ctx, g.ID)
		if err != nil {
			h.writeError(c, err)
			return
		}
		for _, s := range subjects {
			q, err := h.queues.GetActiveSession(ctx, s.ID)
			if errors.Is(err, queue.ErrQueueNotFound) {
				continue
			}
			if err != nil {
				h.writeError(c, err)
				return
			}
			for i, e := range q.Entries {
				if e.StudentID != user.ID {
					continue
				}
				items = append(items, UserQueueItem{
					QueueID:      q.ID,
					SubjectID:    s.ID,
					SubjectTitle: s.Title,
					GroupName:    g.Name,
					Place:        i + 1,
					LabNumber:    e.LabNumber,
					Status:       string(e.Status),
					IsActive:     q.IsActive,
				})
			}
		}
	}
	c.JSON(http.StatusOK, items)
}
