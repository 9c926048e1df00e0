// Package tts 封装了 Google Cloud Text-to-Speech 服务。
package tts

import (
	"context"
	"fmt"
	"strings"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"bicara-go/internal/apperr"
	"bicara-go/internal/config"
)

// Synthesizer 将文本转换为合成音频的字节。
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Close() error
}

// Client 是 Synthesizer 的 Google Cloud 实现。
// 音色与语言在初始化时固定，所有请求输出 MP3。
type Client struct {
	client       *texttospeech.Client
	languageCode string
	voiceName    string
	speakingRate float64
}

// NewClient 创建一个新的语音合成客户端。
// 凭证优先取配置中的文件路径，否则由 SDK 按 GOOGLE_APPLICATION_CREDENTIALS 解析。
func NewClient(cfg config.TTSConfig, gcpCfg config.GCPConfig) (*Client, error) {
	var opts []option.ClientOption
	if creds := strings.TrimSpace(gcpCfg.CredentialsFile); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	client, err := texttospeech.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	return &Client{
		client:       client,
		languageCode: cfg.LanguageCode,
		voiceName:    cfg.VoiceName,
		speakingRate: cfg.SpeakingRate,
	}, nil
}

// Synthesize 将文本合成为 MP3 音频字节。失败不会自动重试。
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: c.languageCode,
			Name:         c.voiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  c.speakingRate,
		},
	}

	resp, err := c.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: synthesize speech: %v", apperr.ErrUpstream, err)
	}
	return resp.GetAudioContent(), nil
}

// Close 释放底层 gRPC 连接。
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
