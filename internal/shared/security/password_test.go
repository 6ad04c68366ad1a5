package security

import "testing"

func TestHashPassword_可校验(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword err=%v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("不应保存明文")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Fatalf("期望正确口令校验通过")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("期望错误口令校验失败")
	}
	if CheckPassword("garbage", "s3cret") {
		t.Fatalf("摘要损坏时期望失败")
	}
}
