package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/cosmos-backend/internal/storage"
	apperrors "github.com/ikkim/cosmos-backend/internal/errors"
	"github.com/ikkim/cosmos-backend/internal/middleware"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder"` // galaxies | planets | profiles (기본값 uploads)
}

// 업로드 허용 폴더
var allowedFolders = map[string]bool{
	"galaxies": true,
	"planets":  true,
	"profiles": true,
	"uploads":  true,
}

// GeneratePresignedURL godoc
// @Summary 업로드용 presigned URL 발급
// @Description 이미지를 S3에 직접 업로드할 수 있는 presigned URL을 발급합니다
// @Tags upload
// @Accept json
// @Produce json
// @Param request body GeneratePresignedURLRequest true "presigned URL 요청"
// @Success 200 {object} gin.H{upload_url=string,file_url=string,key=string}
// @Failure 400 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/upload/presigned-url [post]
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeneratePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid presigned URL request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	// 이미지 파일만 허용
	allowedTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
	}
	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedTypes); err != nil {
		log.Warn("Invalid content type", map[string]interface{}{
			"content_type": req.ContentType,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "이미지 파일만 업로드할 수 있습니다 (JPEG, PNG, GIF, WEBP)")
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "uploads"
	}
	if !allowedFolders[folder] {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "허용되지 않은 업로드 폴더입니다")
		return
	}

	response, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, folder)
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename":     req.Filename,
			"content_type": req.ContentType,
			"folder":       folder,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "업로드 URL 발급에 실패했습니다")
		return
	}

	log.Info("Presigned URL generated", map[string]interface{}{
		"folder": folder,
		"key":    response.Key,
	})

	c.JSON(http.StatusOK, gin.H{
		"upload_url": response.UploadURL,
		"file_url":   response.FileURL,
		"key":        response.Key,
	})
}
