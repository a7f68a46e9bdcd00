package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookr/internal/catalog"
	"bookr/internal/entity"
	"bookr/internal/model"
	"bookr/internal/storage"
	"bookr/internal/utils"
	"bookr/internal/vision"

	"github.com/sirupsen/logrus"
)

const coverCategory = "covers"

var (
	// ErrInvalidISBN 表示 ISBN 不是合法的 ISBN-10/ISBN-13 形式。
	ErrInvalidISBN = errors.New("invalid isbn format")
	// ErrInvalidCover 表示封面数据无法解码。
	ErrInvalidCover = errors.New("invalid cover payload")
)

// BookService 图书推荐服务，封装建书、改书相关的业务逻辑。
type BookService struct {
	repo      model.Repository
	storage   storage.Storage
	extractor vision.Extractor
}

// NewBookService 创建图书服务实例
func NewBookService(repo model.Repository, store storage.Storage, extractor vision.Extractor) *BookService {
	return &BookService{
		repo:      repo,
		storage:   store,
		extractor: extractor,
	}
}

// CreateBook 校验并落库一条推荐，封面按需要写入存储。
func (s *BookService) CreateBook(ctx context.Context, req entity.BookCreateRequest, recommender *entity.DbUser) (*entity.DbBook, error) {
	if !catalog.ValidateISBN(req.ISBN) {
		return nil, ErrInvalidISBN
	}

	coverPath, err := s.resolveCover(ctx, req.CoverData, req.CoverURL)
	if err != nil {
		return nil, err
	}

	book := &entity.DbBook{
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		Publisher:   strings.TrimSpace(req.Publisher),
		ISBN:        strings.TrimSpace(req.ISBN),
		PublishDate: strings.TrimSpace(req.PublishDate),
		Reason:      req.Reason,
		Tags:        entity.TagList(catalog.DedupeTags(req.Tags)),
		CoverPath:   coverPath,
	}
	if recommender != nil {
		book.RecommenderID = recommender.ID
		book.RecommenderName = recommender.Name
	}

	if err := s.repo.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// UpdateBook 合并式更新：请求里缺席的字段保持原值。
func (s *BookService) UpdateBook(ctx context.Context, id uint, req entity.BookUpdateRequest) (*entity.DbBook, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	var updates entity.BookUpdates
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		updates.Title = &title
	}
	if req.Author != nil {
		author := strings.TrimSpace(*req.Author)
		updates.Author = &author
	}
	if req.Publisher != nil {
		publisher := strings.TrimSpace(*req.Publisher)
		updates.Publisher = &publisher
	}
	if req.ISBN != nil {
		if !catalog.ValidateISBN(*req.ISBN) {
			return nil, ErrInvalidISBN
		}
		isbn := strings.TrimSpace(*req.ISBN)
		updates.ISBN = &isbn
	}
	if req.PublishDate != nil {
		publishDate := strings.TrimSpace(*req.PublishDate)
		updates.PublishDate = &publishDate
	}
	if req.Reason != nil {
		updates.Reason = req.Reason
	}
	if req.Tags != nil {
		tags := entity.TagList(catalog.DedupeTags(*req.Tags))
		updates.Tags = &tags
	}

	switch {
	case req.CoverData != nil && strings.TrimSpace(*req.CoverData) != "":
		coverPath, err := s.saveCover(ctx, *req.CoverData)
		if err != nil {
			return nil, err
		}
		updates.CoverPath = &coverPath
	case req.CoverURL != nil:
		coverURL := strings.TrimSpace(*req.CoverURL)
		updates.CoverPath = &coverURL
	}

	if updates.IsEmpty() {
		return book, nil
	}

	if err := s.repo.UpdateBook(ctx, id, updates); err != nil {
		return nil, err
	}

	// 封面被替换后清掉旧的存储对象
	if updates.CoverPath != nil && *updates.CoverPath != book.CoverPath {
		s.removeStoredCover(ctx, book.CoverPath)
	}

	return s.repo.GetBook(ctx, id)
}

// DeleteBook 删除推荐，并尽力清理其存储中的封面。
func (s *BookService) DeleteBook(ctx context.Context, id uint) error {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.removeStoredCover(ctx, book.CoverPath)
	return nil
}

// ExtractCoverInfo 要求视觉模型从封面照片里读出书目信息。识别失败不算错误，
// 返回 nil 信息让前端留空表单即可。
func (s *BookService) ExtractCoverInfo(ctx context.Context, imagePayload string) (*entity.AIBookInfo, error) {
	data, mimeType, _, err := utils.DecodeMediaPayload(imagePayload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCover, err)
	}
	if s.extractor == nil {
		return nil, nil
	}

	info, err := s.extractor.ExtractBookInfo(ctx, data, mimeType)
	if err != nil {
		logrus.WithError(err).WithField("provider", s.extractor.ProviderID()).Warn("cover extraction failed")
		return nil, nil
	}
	return info, nil
}

// resolveCover 处理二选一的封面入参：内联图片落到存储，外链原样保存。
func (s *BookService) resolveCover(ctx context.Context, coverData, coverURL string) (string, error) {
	if strings.TrimSpace(coverData) != "" {
		return s.saveCover(ctx, coverData)
	}
	return strings.TrimSpace(coverURL), nil
}

func (s *BookService) saveCover(ctx context.Context, payload string) (string, error) {
	data, _, ext, err := utils.DecodeMediaPayload(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCover, err)
	}
	if s.storage == nil {
		return "", errors.New("storage is not configured")
	}

	path, err := s.storage.Save(ctx, data, storage.SaveOptions{
		Category:  coverCategory,
		Extension: ext,
	})
	if err != nil {
		return "", fmt.Errorf("save cover: %w", err)
	}
	return path, nil
}

func (s *BookService) removeStoredCover(ctx context.Context, coverPath string) {
	coverPath = strings.TrimSpace(coverPath)
	if coverPath == "" || isExternalCover(coverPath) || s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, coverPath); err != nil {
		logrus.WithError(err).WithField("cover_path", coverPath).Warn("remove stored cover failed")
	}
}

func isExternalCover(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
