package util

import (
	"bytes"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

const thumbnailMaxEdge = 320

// GetSafeContentType 基于文件头嗅探真实类型，不信任客户端声明
func GetSafeContentType(r io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// MakeThumbnail 生成等比缩略图并编码为 JPEG
func MakeThumbnail(r io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	thumb := imaging.Fit(img, thumbnailMaxEdge, thumbnailMaxEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, err
	}
	return &buf, nil
}
