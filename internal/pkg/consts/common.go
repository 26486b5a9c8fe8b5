package consts

const (
	MimePrefixImage = "image"
)

const (
	DefaultAvatarURL = ""
)
