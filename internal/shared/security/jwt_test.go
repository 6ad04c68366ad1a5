package security

import (
	"testing"
	"time"
)

func TestAward_缺少JWT_SECRET应失败(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := NewIssuer(0).Award(1); err == nil {
		t.Fatalf("期望 JWT_SECRET 为空时 Award 返回错误")
	}
}

func TestAwardParse_正常签发并解析(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-123")
	iss := NewIssuer(time.Hour)

	token, err := iss.Award(42)
	if err != nil {
		t.Fatalf("Award err=%v", err)
	}
	claims, err := iss.Parse(token)
	if err != nil {
		t.Fatalf("Parse err=%v", err)
	}
	if claims.Uid != 42 {
		t.Fatalf("期望 claims.Uid==42, got=%v", claims.Uid)
	}

	again, _ := iss.Award(42)
	if again == token {
		t.Fatalf("期望两次签发得到不同 token")
	}
}

func TestParse_过期与错误密钥(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-123")
	iss := NewIssuer(time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := iss.Award(1)
	if err != nil {
		t.Fatalf("Award err=%v", err)
	}
	if _, err := NewIssuer(time.Minute).Parse(expired); err == nil {
		t.Fatalf("期望过期 token 解析失败")
	}

	fresh, _ := NewIssuer(time.Minute).Award(1)
	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := NewIssuer(time.Minute).Parse(fresh); err == nil {
		t.Fatalf("期望密钥不一致时解析失败")
	}
	if _, err := NewIssuer(time.Minute).Parse("not-a-token"); err == nil {
		t.Fatalf("期望非法 token 解析失败")
	}
}
