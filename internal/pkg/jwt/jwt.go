package jwt

import (
	"time"

	"foodloop-server/internal/pkg/config"
	"foodloop-server/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errs.New("invalid token")
	ErrInvalidConfig = errs.New("invalid jwt configuration")
)

type Claims struct {
	MemberID uuid.UUID `json:"member_id"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret   []byte
	duration time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, errs.Wrap(ErrInvalidConfig, "secret is empty")
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidConfig)
	}
	return &Manager{secret: []byte(cfg.Secret), duration: duration}, nil
}

func (m *Manager) Generate(memberID uuid.UUID, now time.Time) (string, error) {
	claims := Claims{
		MemberID: memberID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errs.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

func (m *Manager) Validate(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidToken)
	}
	if !token.Valid || claims.MemberID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return claims.MemberID, nil
}
