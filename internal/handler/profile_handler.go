package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"bicara-go/internal/apperr"
	"bicara-go/internal/service"
	"bicara-go/pkg/log"
)

// ProfileHandler 负责处理与单行用户资料相关的 API 请求。
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler 创建一个新的 ProfileHandler 实例。
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get 处理 GET /api/profile。
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.GetProfile()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "success", profile)
}

// Update 处理 PUT /api/profile，接收 multipart 表单。
// name 字段必填，profile_picture 文件可选。
func (h *ProfileHandler) Update(c *gin.Context) {
	name := c.PostForm("name")

	var picture *service.PictureUpload
	fileHeader, err := c.FormFile("profile_picture")
	if err == nil && fileHeader != nil {
		// 超限文件在读取内容之前拒绝
		if fileHeader.Size > service.MaxPictureSize {
			respondError(c, fmt.Errorf("%w: profile picture exceeds the 5MB limit", apperr.ErrValidation))
			return
		}

		file, openErr := fileHeader.Open()
		if openErr != nil {
			log.Error("Update: Failed to open uploaded picture", openErr)
			respondError(c, openErr)
			return
		}
		defer file.Close()

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			log.Error("Update: Failed to read uploaded picture", readErr)
			respondError(c, readErr)
			return
		}
		picture = &service.PictureUpload{FileName: fileHeader.Filename, Data: data}
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), name, picture)
	if err != nil {
		log.Warnf("Update: Failed to update profile, error: %v", err)
		respondError(c, err)
		return
	}

	log.Infof("Profile updated, name='%s'", profile.Name)
	respondSuccess(c, http.StatusOK, "Profile updated successfully", profile)
}
