package handler

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"seekreviews/internal/infra/minio"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func parsePage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

// saveCoverUpload 接收 multipart 封面文件并上传到对象存储，返回公开 URL
func saveCoverUpload(c *gin.Context, prefix string, id int64) (string, error) {
	fileHeader, err := c.FormFile("cover")
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("%s/%d/%d%s", prefix, id, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	return minio.UploadCover(c.Request.Context(), objectName, file, fileHeader.Size, contentType)
}
