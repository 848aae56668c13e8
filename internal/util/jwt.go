package util

import (
	"errors"
	"exam_prep_backend/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxClaimsKey = "user"
	ctxUserKey   = "currentUser"
)

type Claims struct {
	UserID uint           `json:"user_id"`
	Role   model.UserRole `json:"role"`
	Email  string         `json:"email"`
	jwt.RegisteredClaims
}

func GenerateJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func SetClaims(c *gin.Context, claims *Claims) {
	c.Set(ctxClaimsKey, claims)
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get(ctxClaimsKey)
	if !exists {
		return nil
	}

	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// SetCurrentUser 保存数据库中最新的用户记录，角色以它为准
func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(ctxUserKey, user)
}

func GetCurrentUser(c *gin.Context) *model.User {
	v, exists := c.Get(ctxUserKey)
	if !exists {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
