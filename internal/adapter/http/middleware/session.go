package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/RoshanShah43/rs-bazar/configs"
	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	identityKey = "identity"
	scopeKey    = "cart_scope"

	// GuestHeader carries the anonymous cart id. The service mints one on
	// the first unauthenticated request and echoes it back; the client
	// must replay it to keep its cart.
	GuestHeader = "X-Guest-Id"
)

// Session resolves who the request belongs to. Tokens are issued by the
// external session service; this middleware only verifies them. Buyers
// without a token still get a cart, keyed by a guest id.
type Session struct {
	cfg configs.Config
}

func NewSession(cfg configs.Config) *Session {
	return &Session{cfg: cfg}
}

// Resolve authenticates an optional Bearer token and derives the cart
// scope. A present-but-invalid token is rejected outright; an absent one
// falls back to guest carting.
func (s *Session) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			gid := c.GetHeader(GuestHeader)
			if gid == "" {
				gid = uuid.NewString()
			}
			c.Header(GuestHeader, gid)
			c.Set(scopeKey, "guest:"+gid)
			c.Next()
			return
		}

		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(c, "invalid_request", "malformed authorization header")
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.cfg.Security.JWTSecret), nil
		}, jwt.WithLeeway(30*time.Second)) // small clock skew

		if err != nil || !token.Valid {
			unauth(c, "invalid_token", "invalid jwt")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauth(c, "invalid_token", "claims parsing error")
			return
		}
		if claims["iss"] != s.cfg.Security.Issuer || claims["aud"] != s.cfg.Security.Audience {
			unauth(c, "invalid_token", "iss/aud mismatch")
			return
		}

		id := domain.Identity{
			ID:       strClaim(claims, "sub"),
			Username: strClaim(claims, "username"),
			Email:    strClaim(claims, "email"),
		}
		if id.ID == "" {
			unauth(c, "invalid_token", "missing subject")
			return
		}

		c.Set(identityKey, id)
		c.Set(scopeKey, "user:"+id.ID)
		c.Next()
	}
}

// Identity returns the authenticated buyer, zero for guests.
func Identity(c *gin.Context) domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return domain.Identity{}
}

// Scope returns the request's cart scope.
func Scope(c *gin.Context) string {
	return c.GetString(scopeKey)
}

func strClaim(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}
	return ""
}

func unauth(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code, "error_description": desc})
}
