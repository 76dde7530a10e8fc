package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skyblocklegends/api/internal/api/handler/v1/response"
	"github.com/skyblocklegends/api/internal/api/middleware"
	"github.com/skyblocklegends/api/internal/pkg/jwthelper"
)

func getClaims(ctx *gin.Context) (jwthelper.UserClaims, *response.Err) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		return jwthelper.UserClaims{}, response.ErrUnauthorized()
	}

	return claims, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %v", name))
	}

	return uint(id), nil
}
