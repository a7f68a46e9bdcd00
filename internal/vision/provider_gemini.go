package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bookr/internal/config"
	"bookr/internal/entity"

	"github.com/sirupsen/logrus"
)

// GeminiExtractor calls the Google Generative Language API with a structured
// JSON response schema.
type GeminiExtractor struct {
	httpClient *http.Client
	apiKey     string
	model      string
}

func NewGeminiExtractor(cfg config.Config) (*GeminiExtractor, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	model := strings.TrimSpace(cfg.GeminiModel)
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiExtractor{
		httpClient: &http.Client{},
		apiKey:     cfg.GeminiAPIKey,
		model:      model,
	}, nil
}

func (g *GeminiExtractor) ProviderID() string {
	return ProviderGemini
}

func (g *GeminiExtractor) ExtractBookInfo(ctx context.Context, image []byte, mimeType string) (*entity.AIBookInfo, error) {
	logger := providerLogger(ctx, g.ProviderID(), g.model)
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

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiContentPart{
					{Text: extractPrompt},
					{InlineData: &geminiInlineData{
						MimeType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(image),
					}},
				},
			},
		},
		GenerationConfig: &geminiConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &geminiSchema{
				Type: "OBJECT",
				Properties: map[string]geminiSchema{
					"title":     {Type: "STRING", Description: "书名"},
					"author":    {Type: "STRING", Description: "作者"},
					"publisher": {Type: "STRING", Description: "出版社"},
					"isbn":      {Type: "STRING", Description: "ISBN号"},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.WithError(err).Error("vision_extract_payload_marshal_failed")
		return nil, err
	}

	endpoint := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		logger.WithError(err).Error("vision_extract_request_build_failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Error("vision_extract_request_failed")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithField("status", resp.StatusCode).WithError(err).Error("vision_extract_response_read_failed")
		return nil, err
	}

	logger.WithField("status", resp.StatusCode).Info("vision_extract_response_status")
	if resp.StatusCode >= http.StatusBadRequest {
		logger.WithFields(logrus.Fields{
			"status":       resp.StatusCode,
			"body_preview": logSnippet(string(respBody)),
		}).Warn("vision_extract_response_error")
		var apiErr geminiErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, errors.New(apiErr.Error.Message)
		}
		return nil, fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	var apiResponse geminiResponse
	if err := json.Unmarshal(respBody, &apiResponse); err != nil {
		logger.WithError(err).Error("vision_extract_response_unmarshal_failed")
		return nil, err
	}

	var textBuilder strings.Builder
	for _, candidate := range apiResponse.Candidates {
		for _, part := range candidate.Content.Parts {
			if text := strings.TrimSpace(part.Text); text != "" {
				if textBuilder.Len() > 0 {
					textBuilder.WriteString("\n")
				}
				textBuilder.WriteString(text)
			}
		}
	}

	text := textBuilder.String()
	info := parseBookInfo(text)
	logger.WithFields(logrus.Fields{
		"text_preview": logSnippet(text),
		"recognised":   info != nil,
	}).Info("vision_extract_done")
	return info, nil
}

type geminiContentPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string              `json:"role"`
	Parts []geminiContentPart `json:"parts"`
}

type geminiSchema struct {
	Type        string                  `json:"type"`
	Description string                  `json:"description,omitempty"`
	Properties  map[string]geminiSchema `json:"properties,omitempty"`
}

type geminiConfig struct {
	MaxOutputTokens  int           `json:"maxOutputTokens,omitempty"`
	Temperature      float32       `json:"temperature,omitempty"`
	ResponseMimeType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig *geminiConfig   `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiContentPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason,omitempty"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var _ Extractor = (*GeminiExtractor)(nil)
