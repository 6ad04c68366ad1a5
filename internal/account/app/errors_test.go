package app

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is_按错误码匹配(t *testing.T) {
	err := ErrInvalidCredentials.WithReason(ReasonLoginPwdMismatch)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("期望 errors.Is(err, ErrInvalidCredentials) == true, err=%v", err)
	}
	if errors.Is(err, ErrUserExist) {
		t.Fatalf("不同错误码不应匹配")
	}

	wrapped := fmt.Errorf("wrap: %w", err)
	if !errors.Is(wrapped, ErrInvalidCredentials) {
		t.Fatalf("期望 errors.Is(wrapped, ErrInvalidCredentials) == true, wrapped=%v", wrapped)
	}
}

func TestError_系统错误带栈_业务错误不带(t *testing.T) {
	cause := errors.New("db down")
	sys := ErrUnavailable.WithCause(cause)
	if !errors.Is(sys, ErrUnavailable) || !errors.Is(sys, cause) {
		t.Fatalf("期望匹配 ErrUnavailable 且保留 cause, err=%v", sys)
	}
	if len(sys.Stack()) == 0 {
		t.Fatalf("系统错误应捕获栈")
	}

	biz := ErrUserExist.WithCause(cause)
	if biz.Stack() != nil {
		t.Fatalf("业务错误不应捕获栈")
	}
	if !errors.Is(biz, cause) {
		t.Fatalf("cause 链不应丢失")
	}
}

func TestError_对外提示语(t *testing.T) {
	if got := ErrInvalidCredentials.Msg(); got != "Login failed. Please check your credentials." {
		t.Fatalf("login msg=%q", got)
	}
	if got := ErrUserExist.Msg(); got != "Registration failed. Try a different username and e-mail address." {
		t.Fatalf("register msg=%q", got)
	}
}

func TestGetErrorReasonCode(t *testing.T) {
	err := ErrTokenInvalid.WithReason(ReasonTokenSuperseded).WithData("uid", 3)
	if got := GetErrorReasonCode(err); got != "TOKEN_SUPERSEDED" {
		t.Fatalf("reason=%q", got)
	}
	if ErrTokenInvalid.Data() != nil {
		t.Fatalf("哨兵错误不应被 WithReason 污染")
	}
	if got := GetErrorReasonCode(errors.New("plain")); got != "" {
		t.Fatalf("非 errx 错误 reason 应为空, got=%q", got)
	}
}

func TestFieldErrors_读取逐字段提示(t *testing.T) {
	err := ErrInvalidParam.WithData(dataKeyFields, map[string]string{"email": "Email is invalid"})
	got := FieldErrors(err)
	if got["email"] != "Email is invalid" {
		t.Fatalf("got=%v", got)
	}
	if FieldErrors(errors.New("plain")) != nil {
		t.Fatalf("非 errx 错误应返回 nil")
	}
}
