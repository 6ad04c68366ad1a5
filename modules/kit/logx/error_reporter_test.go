package logx

import (
	"errors"
	"testing"

	"GameAdmin/modules/kit/errx"
)

func TestBuildErrorLog_能提取语义与栈(t *testing.T) {
	cause := errors.New("db down")
	e := errx.NewSys("SYS_INTERNAL", "internal").
		WithData("method", "Login").
		WithCause(cause)

	meta := BuildErrorLog(e)
	if meta.Error == "" {
		t.Fatalf("期望 meta.Error 非空")
	}
	if meta.Code == "" {
		t.Fatalf("期望 meta.Code 非空")
	}
	if meta.Msg == "" {
		t.Fatalf("期望 meta.Msg 非空")
	}
	if meta.Data == nil || meta.Data["method"] != "Login" {
		t.Fatalf("期望 meta.Data 包含 method=Login, got=%v", meta.Data)
	}
	if len(meta.CauseChain) == 0 {
		t.Fatalf("期望 meta.CauseChain 非空")
	}
	if meta.Origin == "" || meta.Stack == "" {
		t.Fatalf("期望 meta.Origin/meta.Stack 非空（错误发生/转换处栈） origin=%q stack=%q", meta.Origin, meta.Stack)
	}
}

func TestBuildErrorLog_业务错误没有栈(t *testing.T) {
	e := errx.NewBiz("BIZ_X", "rejected").WithData("reason", "R1")
	meta := BuildErrorLog(e)
	if meta.Reason != "R1" {
		t.Fatalf("期望 reason=R1, got=%q", meta.Reason)
	}
	if meta.Stack != "" || meta.Origin != "" {
		t.Fatalf("期望业务错误无栈, origin=%q stack=%q", meta.Origin, meta.Stack)
	}
	if len(meta.CauseChain) != 0 {
		t.Fatalf("期望无 cause 链, got=%v", meta.CauseChain)
	}
}

func TestBuildErrorLog_敏感字段脱敏(t *testing.T) {
	e := errx.NewBiz("AUTH_X", "rejected").
		WithData("username", "alice").
		WithData("Password", "hunter2").
		WithData("token", "abc")
	meta := BuildErrorLog(e)
	if meta.Data["username"] != "alice" {
		t.Fatalf("username 不应被脱敏, got=%v", meta.Data["username"])
	}
	if meta.Data["Password"] != redacted || meta.Data["token"] != redacted {
		t.Fatalf("期望敏感字段脱敏, got=%v", meta.Data)
	}
	if e.Data()["token"] != "abc" {
		t.Fatalf("脱敏不应修改原错误的 data")
	}
}
