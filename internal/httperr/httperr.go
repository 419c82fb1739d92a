package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteBusiness maps a business rule violation to its HTTP shape.
// Conflicts (slot races) get 409, missing references 404, the rest 400.
func WriteBusiness(c *gin.Context, be BusinessError, message string) {
	status := http.StatusBadRequest
	switch be.Code {
	case "slot_taken":
		status = http.StatusConflict
	case "not_found", "professional_not_found", "service_not_found":
		status = http.StatusNotFound
	case "forbidden", "not_owner":
		status = http.StatusForbidden
	}

	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: message,
		Detail:  be.Detail,
	})
}
