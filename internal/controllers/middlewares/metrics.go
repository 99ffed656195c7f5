package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver принимает сведения об обработанных запросах.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics передает в observer метод, шаблон маршрута, статус и длительность каждого запроса.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
