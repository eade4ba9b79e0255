package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labqueue/internal/auth"
	"labqueue/internal/queue"
	"labqueue/internal/response"
)

// CreateQueueRequest открывает новую сессию; незаданные поля берутся из настроек сервера.
type CreateQueueRequest struct {
	SubjectID             uint  `json:"subject_id" binding:"required" example:"1"`
	MaxSlots              *int  `json:"max_slots,omitempty" example:"35"`
	MinMaxRuleEnabled     *bool `json:"min_max_rule_enabled,omitempty" example:"true"`
	PriorityMinLabEnabled *bool `json:"priority_min_lab_enabled,omitempty" example:"true"`
	MaxAttempts           *int  `json:"max_attempts,omitempty" example:"2"`
	PriorityCohortLimit   *int  `json:"priority_cohort_limit,omitempty" example:"11"`
	StrictTransitions     *bool `json:"strict_transitions,omitempty" example:"false"`
}

func (r CreateQueueRequest) config(defaults queue.Config) queue.Config {
	cfg := defaults
	if r.MaxSlots != nil {
		cfg.MaxSlots = *r.MaxSlots
	}
	if r.MinMaxRuleEnabled != nil {
		cfg.MinMaxRuleEnabled = *r.MinMaxRuleEnabled
	}
	if r.PriorityMinLabEnabled != nil {
		cfg.PriorityMinLabEnabled = *r.PriorityMinLabEnabled
	}
	if r.MaxAttempts != nil {
		cfg.MaxAttempts = *r.MaxAttempts
	}
	if r.PriorityCohortLimit != nil {
		cfg.PriorityCohortLimit = *r.PriorityCohortLimit
	}
	if r.StrictTransitions != nil {
		cfg.StrictTransitions = *r.StrictTransitions
	}
	return cfg
}

type JoinQueueRequest struct {
	LabNumber int  `json:"lab_number" example:"3"`
	Position  *int `json:"position,omitempty" example:"4"`
}

type KickRequest struct {
	StudentID uint `json:"student_id" binding:"required" example:"7"`
}

type ChangeStatusRequest struct {
	StudentID uint   `json:"student_id" binding:"required" example:"7"`
	Status    string `json:"status" binding:"required" example:"defending"`
}

// CreateQueueHandler создаёт новую сессию очереди
// @Summary		Создание сессии очереди
// @Description	Деактивирует предыдущую сессию предмета и открывает новую. Требуются права старосты или преподавателя
// @Tags			queue
// @Accept			json
// @Produce		json
// @Security		TelegramID
// @Param			request	body		CreateQueueRequest	true	"Предмет и настройки"
// @Success		201		{object}	response.QueueResponse
// @Failure		400		{object}	response.ErrorResponse	"VALIDATION_ERROR, INVALID_ARGUMENT"
// @Failure		403		{object}	response.ErrorResponse	"FORBIDDEN"
// @Failure		404		{object}	response.ErrorResponse	"SUBJECT_NOT_FOUND, STUDENT_NOT_FOUND"
// @Router			/api/queues [post]
func (h *Handler) CreateQueueHandler(c *gin.Context) {
	var req CreateQueueRequest
	if !bindJSON(c, &req) {
		return
	}
	q, err := h.queues.CreateSession(c.Request.Context(), req.SubjectID, auth.CallerID(c), req.config(h.defaults))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.snapshot(c, q))
}

// GetQueueHandler возвращает снимок очереди
// @Summary		Состояние очереди
// @Description	Ранжированный список записей с данными студентов. Клиенты опрашивают этот метод
// @Tags			queue
// @Produce		json
// @Param			id	path		int	true	"ID очереди"
// @Success		200	{object}	response.QueueResponse
// @Failure		400	{object}	response.ErrorResponse	"INVALID_QUEUE_ID"
// @Failure		404	{object}	response.ErrorResponse	"QUEUE_NOT_FOUND"
// @Router			/api/queues/{id} [get]
func (h *Handler) GetQueueHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "INVALID_QUEUE_ID")
	if !ok {
		return
	}
	q, err := h.queues.Snapshot(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(c, q))
}

// GetCurrentQueueHandler возвращает последнюю сессию предмета
// @Summary		Текущая сессия предмета
// @Description	Последняя созданная сессия, даже если она закрыта
// @Tags			queue
// @Produce		json
// @Param			subjectId	path		int	true	"ID предмета"
// @Success		200			{object}	response.QueueResponse
// @Failure		404			{object}	response.ErrorResponse	"QUEUE_NOT_FOUND"
// @Router			/api/queues/current/{subjectId} [get]
func (h *Handler) GetCurrentQueueHandler(c *gin.Context) {
	subjectID, ok := parseUintParam(c, "subjectId", "INVALID_SUBJECT_ID")
	if !ok {
		return
	}
	q, err := h.queues.GetCurrentSession(c.Request.Context(), subjectID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(c, q))
}

// GetActiveQueueHandler возвращает открытую сессию предмета
// @Summary		Активная сессия предмета
// @Tags			queue
// @Produce		json
// @Param			subjectId	path		int	true	"ID предмета"
// @Success		200			{object}	response.QueueResponse
// @Failure		404			{object}	response.ErrorResponse	"QUEUE_NOT_FOUND"
// @Router			/api/queues/active/{subjectId} [get]
func (h *Handler) GetActiveQueueHandler(c *gin.Context) {
	subjectID, ok := parseUintParam(c, "subjectId", "INVALID_SUBJECT_ID")
	if !ok {
		return
	}
	q, err := h.queues.GetActiveSession(c.Request.Context(), subjectID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(c, q))
}

// GetQueueHistoryHandler возвращает все сессии предмета
// @Summary		История сессий
// @Description	Все сессии предмета, новые первыми
// @Tags			queue
// @Produce		json
// @Param			subjectId	path		int	true	"ID предмета"
// @Success		200			{array}		response.QueueSummary
// @Router			/api/queues/history/{subjectId} [get]
func (h *Handler) GetQueueHistoryHandler(c *gin.Context) {
	subjectID, ok := parseUintParam(c, "subjectId", "INVALID_SUBJECT_ID")
	if !ok {
		return
	}
	sessions, err := h.queues.ListSessions(c.Request.Context(), subjectID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]response.QueueSummary, 0, len(sessions))
	for _, q := range sessions {
		out = append(out, response.NewSummary(q))
	}
	c.JSON(http.StatusOK, out)
}

// JoinQueueHandler обрабатывает запрос на вступление в очередь
// @Summary		Вступление в очередь
// @Description	Записывает вызывающего с номером лабораторной и, опционально, желаемым местом
// @Tags			queue
// @Accept			json
// @Produce		json
// @Security		TelegramID
// @Param			id		path		int					true	"ID очереди"
// @Param			request	body		JoinQueueRequest	true	"Лабораторная и место"
// @Success		200		{object}	response.JoinResponse
// @Failure		400		{object}	response.ErrorResponse	"INVALID_QUEUE_ID, INVALID_ARGUMENT"
// @Failure		403		{object}	response.ErrorResponse	"FORBIDDEN"
// @Failure		404		{object}	response.ErrorResponse	"QUEUE_NOT_FOUND, STUDENT_NOT_FOUND"
// @Failure		409		{object}	response.ErrorResponse	"QUEUE_CLOSED, ALREADY_IN_QUEUE, SEAT_TAKEN"
// @Failure		422		{object}	response.ErrorResponse	"LAB_LIMIT_EXCEEDED"
// @Router			/api/queues/{id}/join [post]
func (h *Handler) JoinQueueHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "INVALID_QUEUE_ID")
	if !ok {
		return
	}
	var req JoinQueueRequest
	if !bindJSON(c, &req) {
		return
	}

	q, entry, err := h.queues.Join(c.Request.Context(), id, auth.CallerID(c), req.LabNumber, req.Position)
	if err != nil {
		h.writeError(c, err)
		return
	}
	snap := h.snapshot(c, q)
	out := response.JoinResponse{Message: "Вы записаны в очередь", Queue: snap}
	if place := response.PlaceOf(q, entry.StudentID); place > 0 {
		out.Entry = snap.Entries[place-1]
	}
	c.JSON(http.StatusOK, out)
}

// LeaveQueueHandler обрабатывает запрос на выход из очереди
// @Summary		Выход из очереди
// @Tags			queue
// @Produce		json
// @Security		TelegramID
// @Param			id	path		int	true	"ID очереди"
// @Success		200	{object}	response.QueueResponse
// @Failure		404	{object}	response.ErrorResponse	"QUEUE_NOT_FOUND, NOT_IN_QUEUE"
// @Router			/api/queues/{id}/leave [post]
func (h *Handler) LeaveQueueHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "INVALID_QUEUE_ID")
	if !ok {
		return
	}
	q, err := h.queues.Leave(c.Request.Context(), id, auth.CallerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(c, q))
}

// KickHandler удаляет чужую запись
// @Summary		Удаление студента из очереди
// @Tags			queue
// @Accept			json
// @Produce		json
// @Security		TelegramID
// @Param			id		path		int			true	"ID очереди"
// @Param			request	body		KickRequest	true	"Кого удалить"
// @Success		200		{object}	response.QueueResponse
// @Failure		403		{object}	response.ErrorResponse	"FORBIDDEN"
// @Failure		404		{object}	response.ErrorResponse	"QUEUE_NOT_FOUND, NOT_IN_QUEUE"
// @Router			/api/queues/{id}/kick [post]
func (h *Handler) KickHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "INVALID_QUEUE_ID")
	if !ok {
		return
	}
	var req KickRequest
	if !bindJSON(c, &req) {
		return
	}
	q, err := h.queues.Kick(c.Request.Context(), id, auth.CallerID(c), req.StudentID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(c, q))
}

// ChangeStatusHandler меняет статус записи
// @Summary		Смена статуса записи
// @Description	Перевод в failed увеличивает счётчик попыток
// @Tags			queue
// @Accept			json
// @Produce		json
// @Security		TelegramID
// @Param			id		path		int					true	"ID очереди"
// @Param			request	body		ChangeStatusRequest	true	"Студент и новый статус"
// @Success		200		{object}	response.QueueResponse
// @Failure		400		{object}	response.ErrorResponse	"INVALID_ARGUMENT, INVALID_TRANSITION"
// @Failure		403		{object}	response.ErrorResponse	"FORBIDDEN"
// @Failure		404		{object}	response.ErrorResponse	"QUEUE_NOT_FOUND, NOT_IN_QUEUE"
// @Router			/api/queues/{id}/status [post]
func (h *Handler) ChangeStatusHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "INVALID_QUEUE_ID")
	if !ok {
		return
	}
	var req ChangeStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status, err := queue.ParseStatus(req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	q, _, err := h.queues.ChangeStatus(c.Request.Context(), id, auth.CallerID(c), req.StudentID, status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(c, q))
}

// ToggleQueueHandler открывает или закрывает очередь
// @Summary		Открыть/закрыть очередь
// @Tags			queue
// @Produce		json
// @Security		TelegramID
// @Param			id	path		int	true	"ID очереди"
// @Success		200	{object}	response.QueueResponse
// @Failure		403	{object}	response.ErrorResponse	"FORBIDDEN"
// @Failure		404	{object}	response.ErrorResponse	"QUEUE_NOT_FOUND"
// @Router			/api/queues/{id}/toggle [post]
func (h *Handler) ToggleQueueHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "INVALID_QUEUE_ID")
	if !ok {
		return
	}
	q, err := h.queues.Toggle(c.Request.Context(), id, auth.CallerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.snapshot(c, q))
}
