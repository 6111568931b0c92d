package webframe

import (
	"strconv"
	"time"

	"github.com/rohanthewiz/logger"
)

// requestInfo logs basic request / response stats once the response is written.
func requestInfo(method string, target string, status int, start time.Time) {
	logger.Info("Request",
		"method", method,
		"target", target,
		"status", strconv.Itoa(status),
		"duration", time.Since(start).String(),
	)
}
