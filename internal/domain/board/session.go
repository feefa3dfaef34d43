package board

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleGuest     Role = "guest"
	RoleAdmin     Role = "admin"
)

// Identity is who the current request is acting as on the board.
type Identity struct {
	Role Role
	Name string
}

var anonymous = Identity{Role: RoleAnonymous}

type sessionClaims struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Sessions mints and verifies the signed tokens carried in the board
// cookie. Tokens are short-lived; the board itself is volatile anyway.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: 24 * time.Hour}
}

func (s *Sessions) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: id.Role,
		Name: id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses the token and returns the identity it carries. Any failure
// degrades to the anonymous identity rather than an error; a board visitor
// with a stale cookie is just a visitor.
func (s *Sessions) Verify(token string) Identity {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return anonymous
	}
	switch claims.Role {
	case RoleGuest:
		if claims.Name == "" {
			return anonymous
		}
		return Identity{Role: RoleGuest, Name: claims.Name}
	case RoleAdmin:
		return Identity{Role: RoleAdmin, Name: AdminName}
	default:
		return anonymous
	}
}
