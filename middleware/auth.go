package middleware

import (
	"fmt"
	"strings"

	"assetflow/constants"
	"assetflow/errors"
	"assetflow/response"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// ParseToken kiểm tra chữ ký HS256 và trả về subject của token
func ParseToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, constants.MsgInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, constants.MsgInvalidToken, nil)
	}
	sub, _ := claims["sub"].(string)
	return sub, nil
}

// AuthMiddleware yêu cầu Bearer token khi secret khác rỗng.
// Secret rỗng nghĩa là xác thực do lớp phía trước đảm nhận.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			// trình duyệt không gửi được header khi mở websocket
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			response.FromError(c, errors.NewAppError(errors.ErrCodeUnauthorized, constants.MsgUnauthorized, nil))
			c.Abort()
			return
		}

		userID, err := ParseToken(tokenString, secret)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
