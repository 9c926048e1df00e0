package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bicara-go/internal/apperr"
	"bicara-go/internal/model"
	"bicara-go/internal/repository"
	"bicara-go/pkg/log"
	"bicara-go/pkg/storage"
	"bicara-go/pkg/tts"
)

// SoundboardService 接口定义了音效板相关的业务操作。
type SoundboardService interface {
	CreateSoundboard(ctx context.Context, text string) (*model.Soundboard, error)
	ListSoundboards() ([]model.Soundboard, error)
}

type soundboardService struct {
	repo  repository.SoundboardRepository
	synth tts.Synthesizer
	store storage.ObjectStore
}

// NewSoundboardService 创建一个新的 SoundboardService 实例。
func NewSoundboardService(repo repository.SoundboardRepository, synth tts.Synthesizer, store storage.ObjectStore) SoundboardService {
	return &soundboardService{repo: repo, synth: synth, store: store}
}

// CreateSoundboard 执行合成、上传、落库三步。
// 任何一步失败都不会留下数据库记录；合成和上传均不自动重试。
func (s *soundboardService) CreateSoundboard(ctx context.Context, text string) (*model.Soundboard, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", apperr.ErrValidation)
	}

	audio, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: synthesis returned empty audio", apperr.ErrUpstream)
	}

	id := uuid.NewString()
	fileName := fmt.Sprintf("soundboard/%s.mp3", id)
	if err := s.store.Upload(ctx, fileName, audio, "audio/mpeg"); err != nil {
		return nil, err
	}

	soundboard := &model.Soundboard{
		ID:       id,
		Text:     text,
		AudioURL: s.store.PublicURL(fileName),
		FileName: fileName,
	}
	if err := s.repo.Create(soundboard); err != nil {
		// 落库失败时尽力清理已上传的音频，避免遗留孤儿对象
		if rmErr := s.store.Remove(ctx, fileName); rmErr != nil {
			log.Warnf("[CreateSoundboard] 清理音频对象失败: %s, err=%v", fileName, rmErr)
		}
		return nil, err
	}
	return soundboard, nil
}

// ListSoundboards 按创建时间倒序返回所有音效板记录。
func (s *soundboardService) ListSoundboards() ([]model.Soundboard, error) {
	return s.repo.FindAll()
}
