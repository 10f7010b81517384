package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/ArpanMallick2005/Ai-resume-Analy/config"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

type apiError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
	// older clients signed the id under one of these instead of "sub"
	UserID   string `json:"userId"`
	LegacyID string `json:"id"`
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{Code: utils.CodeUnauthorized, Message: msg})
}

// JWTAuth accepts "Authorization: Bearer <token>" as well as the bare token
// the web client sends.
func JWTAuth(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, apiError{
				Code:    utils.CodeInternal,
				Message: "JWT_SECRET is not set",
			})
			return
		}

		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
			raw = strings.TrimSpace(raw[7:])
		}
		if raw == "" {
			unauthorized(c, "Unauthorized")
			return
		}

		claims := &tokenClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte(cfg.Secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || tok == nil || !tok.Valid {
			unauthorized(c, "invalid token")
			return
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			unauthorized(c, "invalid token issuer")
			return
		}
		if cfg.Audience != "" && !slices.Contains(claims.Audience, cfg.Audience) {
			unauthorized(c, "invalid token audience")
			return
		}

		userID := claims.Subject
		if userID == "" {
			userID = claims.UserID
		}
		if userID == "" {
			userID = claims.LegacyID
		}
		if userID == "" {
			unauthorized(c, "missing subject")
			return
		}

		role := strings.ToLower(strings.TrimSpace(claims.Role))
		if role == "" {
			role = "user"
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)
		c.Next()
	}
}
