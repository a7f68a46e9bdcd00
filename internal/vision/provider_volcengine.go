package vision

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bookr/internal/config"
	"bookr/internal/entity"
	"bookr/internal/utils"

	"github.com/sirupsen/logrus"
	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	volcModel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
)

//文档:https://www.volcengine.com/docs/82379/1362913

// VolcengineExtractor sends the cover through the Ark chat-completion API
// using a multimodal user message.
type VolcengineExtractor struct {
	client *arkruntime.Client
	model  string
}

func NewVolcengineExtractor(cfg config.Config) (*VolcengineExtractor, error) {
	if strings.TrimSpace(cfg.VolcengineAPIKey) == "" {
		return nil, errors.New("volcengine api key is not configured")
	}
	model := strings.TrimSpace(cfg.VolcengineModel)
	if model == "" {
		model = "doubao-seed-1-6-250615"
	}
	return &VolcengineExtractor{
		client: arkruntime.NewClientWithApiKey(cfg.VolcengineAPIKey),
		model:  model,
	}, nil
}

func (v *VolcengineExtractor) ProviderID() string {
	return ProviderVolcengine
}

func (v *VolcengineExtractor) ExtractBookInfo(ctx context.Context, image []byte, mimeType string) (*entity.AIBookInfo, error) {
	logger := providerLogger(ctx, v.ProviderID(), v.model)
	if len(image) == 0 {
		return nil, errors.New("empty cover image")
	}
	if strings.TrimSpace(mimeType) == "" {
		mimeType = http.DetectContentType(image)
	}

	logger.WithFields(logrus.Fields{
		"image_bytes": len(image),
		"mime_type":   mimeType,
	}).Info("vision_extract_start")

	imageURL := utils.EncodeDataURL(image, mimeType)
	req := volcModel.CreateChatCompletionRequest{
		Model: v.model,
		Messages: []*volcModel.ChatCompletionMessage{
			{
				Role: volcModel.ChatMessageRoleUser,
				Content: &volcModel.ChatCompletionMessageContent{
					ListValue: []*volcModel.ChatCompletionMessageContentPart{
						{
							Type: volcModel.ChatCompletionMessageContentPartTypeText,
							Text: extractPrompt,
						},
						{
							Type: volcModel.ChatCompletionMessageContentPartTypeImageURL,
							ImageURL: &volcModel.ChatMessageImageURL{
								URL: imageURL,
							},
						},
					},
				},
			},
		},
	}

	resp, err := v.client.CreateChatCompletion(ctx, req)
	if err != nil {
		logger.WithError(err).Error("vision_extract_request_failed")
		return nil, err
	}
	if len(resp.Choices) == 0 {
		logger.Warn("vision_extract_empty_choices")
		return nil, fmt.Errorf("volcengine returned no choices")
	}

	var text string
	content := resp.Choices[0].Message.Content
	if content != nil && content.StringValue != nil {
		text = *content.StringValue
	}

	info := parseBookInfo(text)
	logger.WithFields(logrus.Fields{
		"text_preview": logSnippet(text),
		"recognised":   info != nil,
	}).Info("vision_extract_done")
	return info, nil
}

var _ Extractor = (*VolcengineExtractor)(nil)
