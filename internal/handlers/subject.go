package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labqueue/internal/response"
)

type CreateSubjectRequest struct {
	Title   string `json:"title" binding:"required" example:"Операционные системы"`
	GroupID uint   `json:"group_id" binding:"required" example:"1"`
	Teacher string `json:"teacher" example:"Петров П.П."`
}

// CreateSubjectHandler добавляет предмет группе
// @Summary		Создание предмета
// @Description	Доступно старосте, преподавателю группы и владельцу
// @Tags			subjects
// @Accept			json
// @Produce		json
// @Security		TelegramID
// @Param			request	body		CreateSubjectRequest	true	"Предмет"
// @Success		201		{object}	response.SubjectResponse
// @Failure		403		{object}	response.ErrorResponse	"FORBIDDEN"
// @Failure		404		{object}	response.ErrorResponse	"GROUP_NOT_FOUND"
// @Router			/subjects [post]
func (h *Handler) CreateSubjectHandler(c *gin.Context) {
	var req CreateSubjectRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.requireManage(c, req.GroupID); err != nil {
		h.writeError(c, err)
		return
	}
	subject, err := h.dir.CreateSubject(c.Request.Context(), req.Title, req.GroupID, req.Teacher)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewSubject(subject))
}

// GetSubjectsHandler возвращает предметы группы
// @Summary		Предметы группы
// @Tags			subjects
// @Produce		json
// @Param			groupId	path		int	true	"ID группы"
// @Success		200		{array}		response.SubjectResponse
// @Router			/subjects/group/{groupId} [get]
func (h *Handler) GetSubjectsHandler(c *gin.Context) {
	groupID, ok := parseUintParam(c, "groupId", "INVALID_GROUP_ID")
	if !ok {
		return
	}
	subjects, err := h.dir.SubjectsByGroup(c.Request.Context(), groupID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]response.SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, response.NewSubject(s))
	}
	c.JSON(http.StatusOK, out)
}
