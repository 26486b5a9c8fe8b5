package handler

import (
	"Recipeo/internal/api/dto"
	"Recipeo/internal/pkg/response"
	"Recipeo/internal/pkg/util"
	"Recipeo/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var createDTO dto.CreatePostDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, post)
}

// GetUserPosts 查看指定用户的全部帖子
func (s *PostHandler) GetUserPosts(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	posts, err := s.postSvc.GetPostsByUser(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetSocialFeed 动态流，排除 userId 指定用户的帖子，参数缺失报 400
func (s *PostHandler) GetSocialFeed(c *gin.Context) {
	excludeID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	posts, err := s.postSvc.GetSocialFeed(c.Request.Context(), excludeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// DeletePost 操作者身份来自 Token，作者或管理员可删
func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	role := c.GetString("role")
	if err := s.postSvc.DeletePost(c.Request.Context(), userID, role, c.Param("postId")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) LikePost(c *gin.Context) {
	likes, err := s.postSvc.LikePost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{
		"likes": likes,
	})
}
