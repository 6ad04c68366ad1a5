package domain

import "time"

const (
	UserDisabled int = 0
	UserNormal   int = 1
)

type User struct {
	UId      int       `gorm:"column:uid;primaryKey;autoIncrement;comment:用户ID" json:"uid"`
	Username string    `gorm:"column:username;type:varchar(64);uniqueIndex;not null;comment:用户名" json:"username"`
	Email    string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null;comment:邮箱" json:"email"`
	Passwd   string    `gorm:"column:passwd;type:varchar(255);not null;comment:bcrypt 密码哈希" json:"-"`
	Status   int       `gorm:"column:status;default:1;comment:状态 1正常 0禁用" json:"status"`
	Ctime    time.Time `gorm:"column:ctime;autoCreateTime;comment:创建时间" json:"ctime"`
	Mtime    time.Time `gorm:"column:mtime;autoUpdateTime;comment:更新时间" json:"mtime"`
}

func (User) TableName() string {
	return "user_info"
}

func (u User) Enabled() bool {
	return u.Status == UserNormal
}

// CheckPassword 用 verify(hash, plaintext) 比对密码。
func (u User) CheckPassword(pwd string, verify func(hash, pwd string) bool) bool {
	if pwd == "" || u.Passwd == "" {
		return false
	}
	return verify(u.Passwd, pwd)
}
