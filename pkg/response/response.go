package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "date-arithmetic-service/pkg/errors"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// ValidationFailed sends 400 with one descriptor per rejected field.
func ValidationFailed(c *gin.Context, fields []pkgErrors.FieldError) {
	if fields == nil {
		fields = []pkgErrors.FieldError{}
	}
	c.JSON(http.StatusBadRequest, ValidationResp{Errors: fields})
}

// Error answers err according to its type: validation errors become 400,
// anything else is a 500.
func Error(c *gin.Context, err error) {
	var verr *pkgErrors.ValidationError
	if errors.As(err, &verr) {
		ValidationFailed(c, verr.Fields)
		return
	}
	InternalError(c, err)
}

// InternalError sends 500. The fault detail is replaced by DefaultErrorMessage
// when KeyRedactErrors is set on the context.
func InternalError(c *gin.Context, err error) {
	msg := DefaultErrorMessage
	if err != nil && !c.GetBool(KeyRedactErrors) {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorResp{
		Error:   MessageInternalError,
		Message: msg,
	})
}

// NotFound sends 404 naming the unmatched path.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResp{
		Error:   MessageNotFound,
		Message: c.Request.URL.Path,
	})
}

// TooManyRequests aborts the chain with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Error: MessageTooManyRequests})
}
