package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error envelope every failing endpoint returns.
type Err struct {
	cause error

	StatusCode int    `json:"-"`
	Msg        string `json:"message"`
}

func (e *Err) Error() string {
	return e.Msg
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrUnauthorized() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "authorization required",
	}
}

func ErrWrongCredentials() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "Invalid credentials",
	}
}

func ErrInvalidToken() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        "invalid or expired token",
	}
}

func ErrPermissionDenied() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        "permission denied",
	}
}

func ErrNotFound(resource string, id any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v %v not found", resource, id),
	}
}

// ErrInternalServerError hides the cause from the client; RenderErr logs it.
func ErrInternalServerError(err error) *Err {
	return &Err{
		cause:      err,
		StatusCode: http.StatusInternalServerError,
		Msg:        "something went wrong",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	fields := []zap.Field{
		zap.Int("status", err.StatusCode),
		zap.String("message", err.Msg),
		zap.String("path", ctx.FullPath()),
	}
	if err.cause != nil {
		fields = append(fields, zap.Error(err.cause))
	}

	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed", fields...)
	} else {
		zap.L().Warn("request rejected", fields...)
	}

	ctx.JSON(err.StatusCode, err)
}

// AbortWithErr is RenderErr for middlewares, stopping the handler chain.
func AbortWithErr(ctx *gin.Context, err *Err) {
	RenderErr(ctx, err)
	ctx.Abort()
}
