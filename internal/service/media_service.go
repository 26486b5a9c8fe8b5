package service

import (
	"Recipeo/internal/api/dto"
	"Recipeo/internal/pkg/consts"
	"Recipeo/internal/pkg/minio"
	"Recipeo/internal/pkg/util"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
)

type MediaService interface {
	UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*dto.MediaUploadDTO, error)
}

type MediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &MediaServiceImpl{}
}

// UploadImage 上传图片到对象存储并生成缩略图。
// 类型以内容嗅探为准，不信任扩展名；缩略图失败不阻塞原图上传。
func (s *MediaServiceImpl) UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*dto.MediaUploadDTO, error) {
	contentType, err := util.GetSafeContentType(file)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrParamInvalid
	}

	objectName := "posts/" + uuid.NewString() + path.Ext(header.Filename)
	key, err := minio.UploadFile(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		return nil, err
	}

	result := &dto.MediaUploadDTO{
		URL:      minio.GetPublicURL(key),
		MimeType: contentType,
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	thumb, err := util.MakeThumbnail(file)
	if err != nil {
		slog.WarnContext(ctx, "生成缩略图失败", "object", objectName, "err", err)
		return result, nil
	}
	thumbName := "posts/thumb/" + uuid.NewString() + ".jpg"
	thumbKey, err := minio.UploadFile(ctx, thumbName, thumb, int64(thumb.Len()), "image/jpeg")
	if err != nil {
		slog.WarnContext(ctx, "上传缩略图失败", "object", thumbName, "err", err)
		return result, nil
	}
	result.ThumbnailURL = minio.GetPublicURL(thumbKey)

	return result, nil
}
