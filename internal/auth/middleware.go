package auth

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labqueue/internal/response"
)

const (
	// CallerHeader несёт Telegram ID пользователя, от имени которого выполняется запрос.
	CallerHeader = "X-Telegram-ID"
	callerKey    = "callerID"
)

// CallerMiddleware достаёт Telegram ID вызывающего из заголовка.
// Заголовку доверяем: его проставляет бот.
func CallerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(CallerHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    "NO_CALLER_ID",
				Message: "Требуется заголовок " + CallerHeader,
			})
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    "INVALID_CALLER_ID",
				Message: "Невозможно прочитать Telegram ID",
				Details: err.Error(),
			})
			return
		}

		c.Set(callerKey, id)
		c.Next()
	}
}

// CallerID возвращает ID, сохранённый CallerMiddleware.
func CallerID(c *gin.Context) int64 {
	return c.GetInt64(callerKey)
}
