package handlers

import (
	"errors"
	"net/http"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/api/middleware"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/gin-gonic/gin"
)

const msgMissingFields = "Missing required fields"

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
	// Error carries the parser message when the AI answered in the wrong format.
	Error string `json:"error,omitempty"`
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		body := APIError{Code: ae.Code, Message: ae.Message}
		if ae.Code == utils.CodeBadOutput && ae.Err != nil {
			body.Error = ae.Err.Error()
		}
		c.JSON(status, body)
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if s := c.GetString(middleware.CtxUserID); s != "" {
		return s, true
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return "", false
}

// bindJSON reports a malformed body as an input error.
func bindJSON(c *gin.Context, op string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return false
	}
	return true
}
