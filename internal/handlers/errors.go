package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"labqueue/internal/directory"
	"labqueue/internal/queue"
	"labqueue/internal/response"
)

type errorKind struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: the first matching kind wins.
var errorKinds = []errorKind{
	{queue.ErrQueueNotFound, http.StatusNotFound, "QUEUE_NOT_FOUND", "Очередь не найдена"},
	{queue.ErrEntryNotFound, http.StatusNotFound, "NOT_IN_QUEUE", "Запись в очереди не найдена"},
	{queue.ErrStudentNotFound, http.StatusNotFound, "STUDENT_NOT_FOUND", "Пользователь не зарегистрирован"},
	{directory.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND", "Пользователь не найден"},
	{directory.ErrGroupNotFound, http.StatusNotFound, "GROUP_NOT_FOUND", "Группа не найдена"},
	{directory.ErrSubjectNotFound, http.StatusNotFound, "SUBJECT_NOT_FOUND", "Предмет не найден"},
	{queue.ErrQueueClosed, http.StatusConflict, "QUEUE_CLOSED", "Очередь закрыта"},
	{queue.ErrDuplicateEntry, http.StatusConflict, "ALREADY_IN_QUEUE", "Пользователь уже состоит в этой очереди"},
	{queue.ErrSeatTaken, http.StatusConflict, "SEAT_TAKEN", "Это место уже занято"},
	{queue.ErrConcurrentModification, http.StatusConflict, "CONCURRENT_MODIFICATION", "Очередь изменилась, повторите запрос"},
	{queue.ErrLabNumberExceedsLimit, http.StatusUnprocessableEntity, "LAB_LIMIT_EXCEEDED", "Эту лабораторную пока нельзя сдавать"},
	{queue.ErrInvalidArgument, http.StatusBadRequest, "INVALID_ARGUMENT", "Неверные параметры запроса"},
	{queue.ErrInvalidTransition, http.StatusBadRequest, "INVALID_TRANSITION", "Недопустимая смена статуса"},
	{directory.ErrInvalidRole, http.StatusBadRequest, "INVALID_ROLE", "Неизвестная роль"},
	{queue.ErrUnauthorized, http.StatusForbidden, "FORBIDDEN", "Недостаточно прав"},
}

// writeError maps a domain error to its HTTP status and ErrorResponse.
func (h *Handler) writeError(c *gin.Context, err error) {
	for _, k := range errorKinds {
		if !errors.Is(err, k.target) {
			continue
		}
		body := response.ErrorResponse{Code: k.code, Message: k.message, Details: err.Error()}
		var limit *queue.LabLimitError
		if errors.As(err, &limit) {
			body.LabLimit = &response.LabLimitDetails{
				LabNumber:  limit.LabNumber,
				MinLab:     limit.MinLab,
				MaxAllowed: limit.MaxAllowed,
			}
		}
		c.JSON(k.status, body)
		return
	}

	_ = c.Error(err)
	h.log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "Внутренняя ошибка сервера",
	})
}
