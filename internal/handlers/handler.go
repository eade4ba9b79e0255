package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"labqueue/internal/access"
	"labqueue/internal/models"
	"labqueue/internal/queue"
	"labqueue/internal/response"
)

// Directory is what the handlers need from the user/group/subject store.
type Directory interface {
	FindOrCreateUser(ctx context.Context, telegramID int64, username, fullName string) (models.User, bool, error)
	FindUserByTelegramID(ctx context.Context, telegramID int64) (models.User, error)
	UsersByID(ctx context.Context, ids []uint) (map[uint]models.User, error)
	CreateGroupFromChat(ctx context.Context, chatID int64, title string, adminTelegramID int64) (models.Group, error)
	AddMember(ctx context.Context, chatID, telegramID int64) (models.Group, error)
	SetMemberRole(ctx context.Context, chatID, telegramID int64, role string) (models.GroupMember, error)
	GroupIDByChat(ctx context.Context, chatID int64) (uint, error)
	MyGroups(ctx context.Context, telegramID int64) ([]models.Group, error)
	CreateSubject(ctx context.Context, title string, groupID uint, teacher string) (models.Subject, error)
	SubjectsByGroup(ctx context.Context, groupID uint) ([]models.Subject, error)
	IsAuthorized(ctx context.Context, groupID, studentID uint, capability access.Capability) (bool, error)
}

type Handler struct {
	queues   *access.Facade
	dir      Directory
	defaults queue.Config
	log      *logrus.Logger
}

// New builds the HTTP handlers. defaults seeds new sessions before request overrides.
func New(queues *access.Facade, dir Directory, defaults queue.Config, logger *logrus.Logger) *Handler {
	return &Handler{queues: queues, dir: dir, defaults: defaults, log: logger}
}

// Health godoc
// @Summary	Проверка работоспособности
// @Tags		system
// @Produce	json
// @Success	200	{object}	response.HealthResponse
// @Router		/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}

func parseUintParam(c *gin.Context, name, code string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    code,
			Message: "Неверный идентификатор",
			Details: name + "=" + c.Param(name),
		})
		return 0, false
	}
	return uint(id), true
}

func parseInt64Param(c *gin.Context, name, code string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    code,
			Message: "Неверный идентификатор",
			Details: name + "=" + c.Param(name),
		})
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// snapshot enriches q with user data. A failed lookup still returns the bare snapshot.
func (h *Handler) snapshot(c *gin.Context, q *queue.Queue) response.QueueResponse {
	ids := make([]uint, 0, len(q.Entries))
	for _, e := range q.Entries {
		ids = append(ids, e.StudentID)
	}
	users, err := h.dir.UsersByID(c.Request.Context(), ids)
	if err != nil {
		h.log.WithError(err).WithField("queue_id", q.ID).Warn("enrich snapshot")
	}
	return response.NewQueue(q, users)
}
