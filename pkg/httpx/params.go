package httpx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [min, max].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseInt32Param — читает path-параметр как знаковое 32-битное целое.
// Отрицательные значения допустимы; их смысл определяет обработчик.
func ParseInt32Param(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Param(name))
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("path parameter %q: %q is not an integer", name, raw)
	}
	return int(v), nil
}
