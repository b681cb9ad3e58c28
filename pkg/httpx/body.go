package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadBodyLimited — читает тело запроса не длиннее maxBytes (maxBytes <= 0 — без предела).
// При превышении возвращает *http.MaxBytesError, сервер закрывает соединение после ответа.
func ReadBodyLimited(c *gin.Context, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 && c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}
	return c.GetRawData()
}

// IsBodyTooLarge — ошибка ReadBodyLimited вызвана превышением предела.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
