package security

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrJWTSecretMissing = errors.New("JWT_SECRET is not set")

const DefaultTokenTTL = 7 * 24 * time.Hour

type Claims struct {
	Uid int `json:"uid"`
	jwt.RegisteredClaims
}

// Issuer 签发并校验 HS256 Token。secret 每次从环境变量读取，便于测试与轮换。
type Issuer struct {
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{ttl: ttl, now: time.Now}
}

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrJWTSecretMissing
	}
	return []byte(secret), nil
}

// Award 生成 Token。
func (i *Issuer) Award(uid int) (string, error) {
	key, err := jwtSecret()
	if err != nil {
		return "", err
	}

	now := i.now()
	claims := &Claims{
		Uid: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			// 同一秒内多次登录也要得到不同的 token
			ID: randomID(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// Parse 解析并验证 Token。
func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	key, err := jwtSecret()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return key, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, err
	}
	if token == nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Verify 校验 Token 并返回其中的 uid。
func (i *Issuer) Verify(tokenStr string) (int, error) {
	claims, err := i.Parse(tokenStr)
	if err != nil {
		return 0, err
	}
	return claims.Uid, nil
}
