package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qiwen-ops/passportd/internal/common"
)

const healthProbeTimeout = 5 * time.Second

func (s *Server) uploadPhoto(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "请选择有效的图片文件"})
		return
	}
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("文件过大（最大%dMB）", s.maxFileSize>>20)})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	acc, err := s.admission.Accept(c.Request.Context(), file.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotImage):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "请选择有效的图片文件"})
		case errors.Is(err, common.ErrQueueFull):
			c.JSON(http.StatusTooManyRequests, gin.H{"detail": s.queueFullDetail()})
		default:
			s.logger.Error("upload.failed", "req_id", common.RequestIDFromContext(c.Request.Context()), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"message":        "图片上传成功！已加入处理队列...",
		"record_id":      acc.RecordID,
		"task_id":        acc.TaskID,
		"image_url":      acc.ImageURL,
		"queue_position": acc.QueuePosition,
	})
}

func (s *Server) queueFullDetail() string {
	if s.uploads.Len() >= s.uploads.Cap() {
		return fmt.Sprintf("上传队列已满（最大%d张），请稍后再试", s.uploads.Cap())
	}
	return fmt.Sprintf("处理队列已满（当前%d个任务），请稍后再试", s.tasks.Len())
}

func (s *Server) recordStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("record_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "无效的记录ID"})
		return
	}
	c.JSON(http.StatusOK, s.tracker.Get(id))
}

func (s *Server) checkService(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
	defer cancel()

	service := "unavailable"
	if s.ocr.Healthy(ctx) {
		service = "available"
	}

	c.JSON(http.StatusOK, gin.H{
		"ocr_service":       service,
		"upload_queue_size": s.uploads.Len(),
		"ocr_queue_size":    s.tasks.Len(),
		"max_upload_queue":  s.uploads.Cap(),
		"max_ocr_queue":     s.tasks.Cap(),
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "passportd",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
