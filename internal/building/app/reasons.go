package app

import "GameAdmin/modules/kit/errx"

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{Code: c, Message: m}
}

var (
	ReasonAddInvalid       = NewReason("CONFIG_ADD_INVALID", "配置参数不合法")
	ReasonAddTypeExist     = NewReason("CONFIG_ADD_TYPE_EXIST", "建筑类型已配置")
	ReasonDeleteNotFound   = NewReason("CONFIG_DELETE_NOT_FOUND", "配置不存在")
	ReasonImportInvalid    = NewReason("CONFIG_IMPORT_INVALID", "导入记录不合法")
	ReasonImportDuplicated = NewReason("CONFIG_IMPORT_DUPLICATED", "导入文件中类型重复")
)

var (
	ReasonRepoReadFail  = NewReason("CONFIG_REPO_READ_FAIL", "配置读取失败")
	ReasonRepoWriteFail = NewReason("CONFIG_REPO_WRITE_FAIL", "配置写入失败")
)

func GetErrorReasonCode(err error) string {
	if e, ok := errx.From(err); ok {
		return e.Reason()
	}
	return ""
}
