package response

// SuccessResponse представляет успешный ответ API
type SuccessResponse struct {
	Message string `json:"message" example:"Операция успешно выполнена"`
}

// ErrorResponse представляет ответ с ошибкой API
type ErrorResponse struct {
	// Код ошибки для программной обработки
	// example: QUEUE_CLOSED
	Code string `json:"code"`

	// Человекочитаемое сообщение об ошибке
	// example: Очередь закрыта
	Message string `json:"message"`

	// Дополнительные детали об ошибке (опционально)
	// example: lab_number: must be positive, got 0
	Details string `json:"details,omitempty"`

	// Заполняется только для LAB_LIMIT_EXCEEDED
	LabLimit *LabLimitDetails `json:"lab_limit,omitempty"`
}

// LabLimitDetails объясняет, какую лабу можно сдавать сейчас
type LabLimitDetails struct {
	LabNumber  int `json:"lab_number" example:"5"`
	MinLab     int `json:"min_lab" example:"2"`
	MaxAllowed int `json:"max_allowed" example:"4"`
}

// HealthResponse ответ /health
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
