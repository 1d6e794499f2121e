package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/sirupsen/logrus"
)

// statusFor сопоставляет категорию ошибки с HTTP-статусом
func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUpstreamFailure:
		return http.StatusBadGateway
	case apperr.KindPersistenceFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError пишет ответ с безопасным для клиента сообщением
func respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	status := statusFor(err)
	entry := log.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.WithField("trace", apperr.Trace(err)).Error(msg)
	} else {
		entry.Warn(msg)
	}
	c.JSON(status, gin.H{"error": apperr.UserMessage(err)})
}
