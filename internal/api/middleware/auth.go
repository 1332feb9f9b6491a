package middleware

import (
	"strings"

	"seekreviews/internal/api/dto"
	"seekreviews/internal/api/response"
	"seekreviews/pkg/utils"

	"github.com/gin-gonic/gin"
)

const ContextKeyUser = "currentUser"

// AuthRequired JWT 认证中间件，要求请求必须携带有效 Token
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "Missing authentication token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, claimsToUserInfo(claims))
		c.Next()
	}
}

// AuthOptional 可选认证中间件。Token 有效则注入用户信息，
// 缺失或无效都放行（详情页的 is_seen 用）
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token != "" {
			if claims, err := utils.ParseToken(token); err == nil {
				c.Set(ContextKeyUser, claimsToUserInfo(claims))
			}
		}
		c.Next()
	}
}

// AdminRequired 管理员权限中间件（必须在 AuthRequired 之后使用）。
// 管理员标记取自令牌声明，无需再查库
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			response.Unauthorized(c, "Missing authentication token")
			c.Abort()
			return
		}

		if !user.IsAdmin {
			response.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetCurrentUser 从 Gin Context 中获取当前登录用户
func GetCurrentUser(c *gin.Context) (*dto.UserInfo, bool) {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := val.(*dto.UserInfo)
	return user, ok
}

func claimsToUserInfo(claims *utils.Claims) *dto.UserInfo {
	return &dto.UserInfo{
		ID:          claims.UserID,
		Username:    claims.Username,
		Email:       claims.Email,
		IsAdmin:     claims.IsAdmin,
		Description: claims.Description,
	}
}

// extractToken 从 Authorization 头中提取 Bearer Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
