package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bicara-go/internal/apperr"
	"bicara-go/internal/model"
	"bicara-go/internal/repository"
	"bicara-go/pkg/storage"
)

// MaxPictureSize 是头像文件的大小上限 (5MB)。
const MaxPictureSize = 5 * 1024 * 1024

// allowedPictureTypes 映射允许的头像扩展名到其内容类型。
var allowedPictureTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// PictureUpload 是 handler 从 multipart 表单中提取出的头像文件。
type PictureUpload struct {
	FileName string
	Data     []byte
}

// ProfileService 接口定义了单行用户资料相关的业务操作。
type ProfileService interface {
	GetProfile() (*model.Profile, error)
	UpdateProfile(ctx context.Context, name string, picture *PictureUpload) (*model.Profile, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	store storage.ObjectStore
}

// NewProfileService 创建一个新的 ProfileService 实例。
func NewProfileService(repo repository.ProfileRepository, store storage.ObjectStore) ProfileService {
	return &profileService{repo: repo, store: store}
}

// GetProfile 读取唯一的资料行，未初始化时返回 NotFound。
func (s *profileService) GetProfile() (*model.Profile, error) {
	profile, err := s.repo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile has not been initialized", apperr.ErrNotFound)
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile 更新唯一的资料行，首次调用时创建，之后永远原地更新。
// 携带头像时先校验并上传，上传成功后才写数据库。
func (s *profileService) UpdateProfile(ctx context.Context, name string, picture *PictureUpload) (*model.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}

	var pictureURL *string
	if picture != nil {
		url, err := s.uploadPicture(ctx, picture)
		if err != nil {
			return nil, err
		}
		pictureURL = &url
	}

	profile, err := s.repo.Get()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &model.Profile{Name: name, ProfilePictureURL: pictureURL}
		if err := s.repo.Create(profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	profile.Name = name
	if pictureURL != nil {
		profile.ProfilePictureURL = pictureURL
	}
	if err := s.repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// uploadPicture 校验头像文件并上传到对象存储，返回公开 URL。
// 只接受 JPEG/PNG/JPG，大小不超过 MaxPictureSize，内容与扩展名须一致。
func (s *profileService) uploadPicture(ctx context.Context, picture *PictureUpload) (string, error) {
	if len(picture.Data) == 0 {
		return "", fmt.Errorf("%w: profile picture is empty", apperr.ErrValidation)
	}
	if len(picture.Data) > MaxPictureSize {
		return "", fmt.Errorf("%w: profile picture exceeds the 5MB limit", apperr.ErrValidation)
	}

	ext := strings.ToLower(filepath.Ext(picture.FileName))
	contentType, ok := allowedPictureTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: only JPEG/PNG/JPG pictures are allowed", apperr.ErrValidation)
	}
	if sniffed := http.DetectContentType(picture.Data); sniffed != contentType {
		return "", fmt.Errorf("%w: picture content does not match its extension", apperr.ErrValidation)
	}

	objectName := fmt.Sprintf("profiles/%s%s", uuid.NewString(), ext)
	if err := s.store.Upload(ctx, objectName, picture.Data, contentType); err != nil {
		return "", err
	}
	return s.store.PublicURL(objectName), nil
}
