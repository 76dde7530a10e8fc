package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skyblocklegends/api/internal/api/handler/v1/response"
	"github.com/skyblocklegends/api/internal/pkg/jwthelper"
)

// ClaimsContextKey is where VerifyJWT stores the decoded token claims.
const ClaimsContextKey = "user_claims"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a bearer token (401) or with an invalid
// or expired one (403), and attaches the decoded claims to the context
// otherwise.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.AbortWithErr(ctx, response.ErrUnauthorized())
			return
		}

		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			response.AbortWithErr(ctx, response.ErrUnauthorized())
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenStr)
		if err != nil {
			response.AbortWithErr(ctx, response.ErrInvalidToken())
			return
		}

		ctx.Set(ClaimsContextKey, claims)
		ctx.Next()
	}
}

// RequireRoles gates a route group to the given roles. It assumes VerifyJWT
// ran earlier in the chain.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := GetClaims(ctx)
		if !ok {
			response.AbortWithErr(ctx, response.ErrUnauthorized())
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				ctx.Next()
				return
			}
		}

		response.AbortWithErr(ctx, response.ErrPermissionDenied())
	}
}

func GetClaims(ctx *gin.Context) (jwthelper.UserClaims, bool) {
	value, exists := ctx.Get(ClaimsContextKey)
	if !exists {
		return jwthelper.UserClaims{}, false
	}

	claims, ok := value.(jwthelper.UserClaims)

	return claims, ok
}
