// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminCookieName holds the admin session token. The cookie has no max-age,
// so the browser drops it when the session ends.
const AdminCookieName = "bost_admin_auth"

const adminSubject = "admin"

// Generate JWT secret key
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// AdminGate guards the content editor with one shared password.
//
// This is a shared secret, not a user account: there is no per-user identity,
// lockout or rate limit, and anyone who knows the password is the admin.
type AdminGate struct {
	hash   string
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewAdminGate hashes password once so it is never kept in memory in the
// clear. An empty secret gets a random per-process key, which invalidates
// tokens on restart.
func NewAdminGate(password, secret string, expiry time.Duration, cost int) (*AdminGate, error) {
	if password == "" {
		return nil, errors.New("admin password not set")
	}
	if secret == "" {
		secret = GenerateJWTSecret()
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	return &AdminGate{hash: hash, secret: []byte(secret), expiry: expiry, now: time.Now}, nil
}

func (g *AdminGate) CheckPassword(password string) bool {
	return CheckPasswordHash(password, g.hash)
}

// Generate JWT token
func (g *AdminGate) GenerateToken() (string, error) {
	now := g.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": adminSubject,
		"exp": now.Add(g.expiry).Unix(),
		"iat": now.Unix(),
	})
	return token.SignedString(g.secret)
}

// Auth middleware
func (g *AdminGate) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}
		if tokenString == "" {
			tokenString, _ = c.Cookie(AdminCookieName)
		}
		if tokenString == "" {
			RespondWithError(c, http.StatusUnauthorized, "Admin login required")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return g.secret, nil
		})
		if err != nil || !token.Valid {
			RespondWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["sub"] != adminSubject {
			RespondWithError(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		c.Set("admin", true)
		c.Next()
	}
}
