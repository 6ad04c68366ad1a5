package model

type LoginReq struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Ip       string `json:"-" form:"-"`
	Hardware string `json:"hardware" form:"-"`
}

type LoginResp struct {
	UId      int    `json:"uid"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type RegisterReq struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type RegisterResp struct {
	UId      int    `json:"uid"`
	Username string `json:"username"`
}

// Principal 是通过 token 校验的调用方。
type Principal struct {
	UId      int
	Username string
	Token    string
}
