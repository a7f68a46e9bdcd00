package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookr/internal/catalog"
	"bookr/internal/entity"
	"bookr/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListBooks 公共目录。?q= 在服务端做不区分大小写的多字段子串过滤，
// ?recommender_id= 缩小到某个推荐人的书。
func (h *HTTPHandler) ListBooks(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusOK, entity.BookListResponse{Books: []entity.BookItem{}})
		return
	}

	var params entity.BookQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	books, err := h.repo.ListBooks(ctx, params.RecommenderID)
	if err != nil {
		logrus.WithError(err).Error("failed to list books")
		InternalError(c, "加载图书失败")
		return
	}

	books = catalog.Filter(books, params.Query)

	items := make([]entity.BookItem, 0, len(books))
	for i := range books {
		items = append(items, h.makeBookItem(&books[i]))
	}
	c.JSON(http.StatusOK, entity.BookListResponse{Books: items})
}

func (h *HTTPHandler) GetBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.repo.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeBookNotFound, "图书不存在")
			return
		}
		logrus.WithError(err).WithField("book_id", id).Error("failed to load book")
		InternalError(c, "加载图书失败")
		return
	}

	c.JSON(http.StatusOK, entity.BookDetailResponse{Book: h.makeBookItem(book)})
}

func (h *HTTPHandler) CreateBook(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	var req entity.BookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	recommender, err := h.repo.GetUserByID(ctx, requestUser.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to load recommender")
		InternalError(c, "加载用户失败")
		return
	}

	book, err := h.bookService.CreateBook(ctx, req, recommender)
	if err != nil {
		h.writeBookServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity.BookDetailResponse{Book: h.makeBookItem(book)})
}

func (h *HTTPHandler) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}
	if !h.authoriseBookWrite(c, id) {
		return
	}

	var req entity.BookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	book, err := h.bookService.UpdateBook(ctx, id, req)
	if err != nil {
		h.writeBookServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity.BookDetailResponse{Book: h.makeBookItem(book)})
}

func (h *HTTPHandler) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}
	if !h.authoriseBookWrite(c, id) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.bookService.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeBookNotFound, "图书不存在")
			return
		}
		logrus.WithError(err).WithField("book_id", id).Error("failed to delete book")
		InternalError(c, "删除图书失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// authoriseBookWrite 只有推荐人本人或管理员可以修改、删除一条推荐。
func (h *HTTPHandler) authoriseBookWrite(c *gin.Context, bookID uint) bool {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return false
	}
	if requestUser.IsAdmin() {
		return true
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.repo.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeBookNotFound, "图书不存在")
			return false
		}
		logrus.WithError(err).WithField("book_id", bookID).Error("failed to load book")
		InternalError(c, "加载图书失败")
		return false
	}
	if book.RecommenderID != requestUser.ID {
		Forbidden(c, "只能操作自己的推荐")
		return false
	}
	return true
}

func (h *HTTPHandler) writeBookServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidISBN):
		BadRequest(c, ErrCodeInvalidISBN, "ISBN 格式不正确")
	case errors.Is(err, service.ErrInvalidCover):
		BadRequest(c, ErrCodeInvalidCover, "封面数据无法解析")
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, ErrCodeBookNotFound, "图书不存在")
	default:
		logrus.WithError(err).Error("book operation failed")
		InternalError(c, "图书操作失败")
	}
}

func (h *HTTPHandler) makeBookItem(book *entity.DbBook) entity.BookItem {
	if book == nil {
		return entity.BookItem{}
	}
	return entity.BookItem{
		ID:              book.ID,
		Title:           book.Title,
		Author:          book.Author,
		Publisher:       book.Publisher,
		ISBN:            book.ISBN,
		PublishDate:     book.PublishDate,
		Reason:          book.Reason,
		Tags:            book.Tags.ToSlice(),
		CoverURL:        h.publicURL(book.CoverPath),
		RecommenderID:   book.RecommenderID,
		RecommenderName: book.RecommenderName,
		CreatedAt:       book.CreatedAt,
	}
}

func parseBookID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid book id")
		return 0, false
	}
	return uint(parsed), true
}
