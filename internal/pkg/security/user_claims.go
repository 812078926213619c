package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Melodia"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims 会话令牌携带的业务信息。签发方是外部身份服务，
// 这里只做验签与解析。
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}
