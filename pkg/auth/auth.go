package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleAnonymous Role = ""
	RoleStudent   Role = "student"
	RoleStaff     Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleStaff
}

// Session is the identity a request acts as. The zero value is anonymous.
type Session struct {
	Role Role   `json:"role"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s Session) IsStudent() bool { return s.Role == RoleStudent }
func (s Session) IsStaff() bool   { return s.Role == RoleStaff }
func (s Session) Anonymous() bool { return !s.Role.Valid() }

type ctxKey struct{}

func SetSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// GetSession returns the session stored in ctx, anonymous when absent.
func GetSession(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}

type Config struct {
	Secret   string        `envconfig:"AUTH_SECRET" default:"library-engine-dev-secret" json:"-"`
	TokenTTL time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"24h"`
}

type Claims struct {
	Profile Session `json:"profile"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Token is the login response. ExpiresIn is the token lifetime in seconds.
type Token struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	Role        Role   `json:"role"`
}

// Issuer signs and parses HS256 session tokens.
type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(cfg Config) *Issuer {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{
		key: []byte(cfg.Secret),
		ttl: ttl,
		now: time.Now,
	}
}

func (i *Issuer) Issue(s Session) (Token, error) {
	if !s.Role.Valid() {
		return Token{}, errors.New("anonymous session can not be signed")
	}
	now := i.now()
	expirationTime := now.Add(i.ttl)
	claims := &Claims{
		Profile: s,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   s.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return Token{}, errors.Wrap(err, "sign token")
	}
	return Token{
		AccessToken: tokenString,
		ExpiresIn:   int(i.ttl.Seconds()),
		Role:        s.Role,
	}, nil
}

func (i *Issuer) Parse(tokenStr string) (Session, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenStr), claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return i.key, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return Session{}, ErrTokenExpired
		}
		return Session{}, ErrTokenInvalid
	}
	if !token.Valid || !claims.Profile.Role.Valid() {
		return Session{}, ErrTokenInvalid
	}
	return claims.Profile, nil
}
