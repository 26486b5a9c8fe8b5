package handler

import (
	"Recipeo/internal/api/dto"
	"Recipeo/internal/pkg/response"
	"Recipeo/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetUint64("user_id")
	user, err := s.userSvc.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UpdateAvatar(c *gin.Context) {
	var updateDTO dto.UpdateAvatarDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.userSvc.UpdateAvatar(c.Request.Context(), userID, updateDTO.AvatarURL); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Search 按展示名搜索用户，关键字为空直接报参数错误
func (s *UserHandler) Search(c *gin.Context) {
	var searchDTO dto.SearchUserDTO
	err := c.ShouldBindQuery(&searchDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	users, err := s.userSvc.SearchUsers(c.Request.Context(), searchDTO.Keyword)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}
