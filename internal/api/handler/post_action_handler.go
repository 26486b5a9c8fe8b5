package handler

import (
	"Recipeo/internal/api/dto"
	"Recipeo/internal/pkg/response"
	"Recipeo/internal/pkg/util"
	"Recipeo/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	postActionSvc service.PostActionService
}

func NewPostActionHandler(postActionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{
		postActionSvc: postActionSvc,
	}
}

func (s *PostActionHandler) AddComment(c *gin.Context) {
	var commentDTO dto.CreateCommentDTO
	err := c.ShouldBind(&commentDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	comments, err := s.postActionSvc.AddComment(c.Request.Context(), userID, c.Param("postId"), &commentDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]interface{}{
		"comments": comments,
	})
}

func (s *PostActionHandler) EditComment(c *gin.Context) {
	var editDTO dto.EditCommentDTO
	err := c.ShouldBind(&editDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&editDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	comments, err := s.postActionSvc.EditComment(c.Request.Context(), userID, c.Param("postId"), c.Param("commentId"), &editDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]interface{}{
		"comments": comments,
	})
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	comments, err := s.postActionSvc.DeleteComment(c.Request.Context(), userID, c.Param("postId"), c.Param("commentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]interface{}{
		"comments": comments,
	})
}
