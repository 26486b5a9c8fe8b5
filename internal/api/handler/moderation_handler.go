package handler

import (
	"Recipeo/internal/api/dto"
	"Recipeo/internal/pkg/response"
	"Recipeo/internal/pkg/util"
	"Recipeo/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationSvc service.ModerationService
}

func NewModerationHandler(moderationSvc service.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationSvc: moderationSvc,
	}
}

// BanUser 管理员封禁用户，按邮箱定位
func (s *ModerationHandler) BanUser(c *gin.Context) {
	var banDTO dto.BanUserDTO
	err := c.ShouldBind(&banDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&banDTO); err != nil {
		response.Error(c, err)
		return
	}
	ban, err := s.moderationSvc.BanUser(c.Request.Context(), &banDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]interface{}{
		"banDetails": ban,
	})
}

func (s *ModerationHandler) ListBans(c *gin.Context) {
	bans, err := s.moderationSvc.ListBans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, bans)
}

// ReportPost 任意登录用户举报帖子，举报人取自 Token
func (s *ModerationHandler) ReportPost(c *gin.Context) {
	var reportDTO dto.ReportPostDTO
	err := c.ShouldBind(&reportDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&reportDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	report, err := s.moderationSvc.ReportPost(c.Request.Context(), userID, &reportDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, map[string]interface{}{
		"report": report,
	})
}

func (s *ModerationHandler) ListReports(c *gin.Context) {
	reports, err := s.moderationSvc.ListReports(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reports)
}

// ResolveReport 处理举报：删帖并关闭举报
func (s *ModerationHandler) ResolveReport(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("reportId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	postID := c.Param("postId")
	if err = s.moderationSvc.ResolveDeleteAndWarn(c.Request.Context(), reportID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DismissReport 驳回举报，帖子保留
func (s *ModerationHandler) DismissReport(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("reportId"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.moderationSvc.DismissReport(c.Request.Context(), reportID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
