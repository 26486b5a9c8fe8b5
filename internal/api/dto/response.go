package dto

// Response 统一返回体。Kind 为机器可读的错误类别，成功时为空。
type Response struct {
	Code    int         `json:"code"`
	Kind    string      `json:"kind,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
