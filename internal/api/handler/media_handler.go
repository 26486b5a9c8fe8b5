package handler

import (
	"Recipeo/internal/pkg/response"
	"Recipeo/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// Upload 图片上传，表单字段名为 file
func (s *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	result, err := s.mediaSvc.UploadImage(c.Request.Context(), file, header)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, result)
}
