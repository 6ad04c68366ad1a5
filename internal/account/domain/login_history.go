package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	LoginFail    int8 = 0
	LoginSuccess int8 = 1
)

// 与列宽一致，超长的 User-Agent 截断后再入库。
const (
	maxIpLen       = 50
	maxHardwareLen = 255
)

// LoginHistory 每次登录尝试追加一条，失败也记录。
type LoginHistory struct {
	Id       int       `gorm:"column:id;primaryKey;autoIncrement;comment:主键ID" json:"id"`
	UId      int       `gorm:"column:uid;index:idx_uid_time;not null;comment:用户ID" json:"uid"`
	CTime    time.Time `gorm:"column:ctime;autoCreateTime;index:idx_uid_time;comment:登录时间" json:"ctime"`
	Ip       string    `gorm:"column:ip;type:varchar(50);comment:IP地址" json:"ip"`
	State    int8      `gorm:"column:state;default:1;comment:登录状态 1成功 0失败" json:"state"`
	Hardware string    `gorm:"column:hardware;type:varchar(255);comment:客户端标识(User-Agent)" json:"hardware"`
}

func (LoginHistory) TableName() string {
	return "login_history"
}

func NewLoginHistory(uid int, at time.Time, ip, hardware string, success bool) LoginHistory {
	state := LoginFail
	if success {
		state = LoginSuccess
	}
	return LoginHistory{
		UId:      uid,
		CTime:    at,
		Ip:       truncate(strings.TrimSpace(ip), maxIpLen),
		Hardware: truncate(strings.TrimSpace(hardware), maxHardwareLen),
		State:    state,
	}
}

func (h LoginHistory) Succeeded() bool {
	return h.State == LoginSuccess
}

// truncate 按字符截断，不切断多字节字符。
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
