package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labqueue/internal/access"
	"labqueue/internal/auth"
	"labqueue/internal/queue"
	"labqueue/internal/response"
)

type RegisterUserRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required" example:"123456789"`
	Username   string `json:"username" example:"ivanov"`
	FullName   string `json:"full_name" binding:"required" example:"Иванов Иван"`
}

type CreateGroupRequest struct {
	TelegramChatID int64  `json:"telegram_chat_id" binding:"required" example:"-1001234567890"`
	Title          string `json:"title" binding:"required" example:"ПИ-21"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required" example:"headman"`
}

// RegisterUserHandler регистрирует пользователя бота
// @Summary		Регистрация пользователя
// @Description	Находит пользователя по Telegram ID или создаёт его. Первый пользователь становится владельцем
// @Tags			users
// @Accept			json
// @Produce		json
// @Param			request	body		RegisterUserRequest	true	"Данные из Telegram"
// @Success		200		{object}	response.UserResponse
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR"
// @Router			/users [post]
func (h *Handler) RegisterUserHandler(c *gin.Context) {
	var req RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, created, err := h.dir.FindOrCreateUser(c.Request.Context(), req.TelegramID, req.Username, req.FullName)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUser(user, created))
}

// CreateGroupHandler регистрирует чат как группу
// @Summary		Создание группы из чата
// @Description	Вызывающий становится старостой. Повторный вызов для того же чата возвращает существующую группу
// @Tags			groups
// @Accept			json
// @Produce		json
// @Security		TelegramID
// @Param			request	body		CreateGroupRequest	true	"Чат"
// @Success		200		{object}	response.GroupResponse
// @Failure		404		{object}	response.ErrorResponse	"USER_NOT_FOUND"
// @Router			/groups [post]
func (h *Handler) CreateGroupHandler(c *gin.Context) {
	var req CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}
	group, err := h.dir.CreateGroupFromChat(c.Request.Context(), req.TelegramChatID, req.Title, auth.CallerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewGroup(group))
}

// AddMemberHandler добавляет вызывающего в группу чата
// @Summary		Вступление в группу
// @Tags			groups
// @Produce		json
// @Security		TelegramID
// @Param			chatId	path		int	true	"Telegram ID чата"
// @Success		200		{object}	response.GroupResponse
// @Failure		404		{object}	response.ErrorResponse	"GROUP_NOT_FOUND, USER_NOT_FOUND"
// @Router			/groups/{chatId}/members [post]
func (h *Handler) AddMemberHandler(c *gin.Context) {
	chatID, ok := parseInt64Param(c, "chatId", "INVALID_CHAT_ID")
	if !ok {
		return
	}
	group, err := h.dir.AddMember(c.Request.Context(), chatID, auth.CallerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewGroup(group))
}

// SetMemberRoleHandler назначает роль участнику группы
// @Summary		Смена роли участника
// @Description	Доступно старосте, преподавателю группы и владельцу
// @Tags			groups
// @Accept			json
// @Produce		json
// @Security		TelegramID
// @Param			chatId	path		int				true	"Telegram ID чата"
// @Param			tgId	path		int				true	"Telegram ID участника"
// @Param			request	body		SetRoleRequest	true	"student, headman или teacher"
// @Success		200		{object}	response.MemberResponse
// @Failure		400		{object}	response.ErrorResponse	"INVALID_ROLE"
// @Failure		403		{object}	response.ErrorResponse	"FORBIDDEN"
// @Router			/groups/{chatId}/members/{tgId}/role [put]
func (h *Handler) SetMemberRoleHandler(c *gin.Context) {
	chatID, ok := parseInt64Param(c, "chatId", "INVALID_CHAT_ID")
	if !ok {
		return
	}
	target, ok := parseInt64Param(c, "tgId", "INVALID_TELEGRAM_ID")
	if !ok {
		return
	}
	var req SetRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	groupID, err := h.dir.GroupIDByChat(ctx, chatID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if err := h.requireManage(c, groupID); err != nil {
		h.writeError(c, err)
		return
	}
	member, err := h.dir.SetMemberRole(ctx, chatID, target, req.Role)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MemberResponse{UserID: member.UserID, Role: req.Role})
}

// GetMyGroupsHandler возвращает группы пользователя
// @Summary		Мои группы
// @Tags			groups
// @Produce		json
// @Param			tgId	path		int	true	"Telegram ID пользователя"
// @Success		200		{array}		response.GroupResponse
// @Router			/groups/my/{tgId} [get]
func (h *Handler) GetMyGroupsHandler(c *gin.Context) {
	tgID, ok := parseInt64Param(c, "tgId", "INVALID_TELEGRAM_ID")
	if !ok {
		return
	}
	groups, err := h.dir.MyGroups(c.Request.Context(), tgID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]response.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, response.NewGroup(g))
	}
	c.JSON(http.StatusOK, out)
}

// requireManage checks that the caller heads or teaches groupID.
func (h *Handler) requireManage(c *gin.Context, groupID uint) error {
	ctx := c.Request.Context()
	user, err := h.dir.FindUserByTelegramID(ctx, auth.CallerID(c))
	if err != nil {
		return err
	}
	ok, err := h.dir.IsAuthorized(ctx, groupID, user.ID, access.CapabilityManage)
	if err != nil {
		return err
	}
	if !ok {
		return queue.ErrUnauthorized
	}
	return nil
}
