package consts

const (
	TokenBlacklistKey = "auth:token:blacklist:"
	UserSimpleInfoKey = "user:simple:info:"
)
