package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bookr/internal/catalog"
	"bookr/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ListTags 返回对齐后的标签全集：系统标签先行，书上快照里
// 系统没有的名字按首次出现顺序排在后面。
func (h *HTTPHandler) ListTags(c *gin.Context) {
	systemTags, books, ok := h.loadTagUniverse(c)
	if !ok {
		return
	}

	tags := catalog.Reconcile(systemTags, catalog.BookTags(books))
	c.JSON(http.StatusOK, entity.TagListResponse{Tags: tags})
}

// ListUserGeneratedTags 用户自建标签桶是读取时重新推导的：
// 类型为 user 且名字不在当前系统标签集合里。
func (h *HTTPHandler) ListUserGeneratedTags(c *gin.Context) {
	systemTags, books, ok := h.loadTagUniverse(c)
	if !ok {
		return
	}

	tags := catalog.Reconcile(systemTags, catalog.BookTags(books))
	c.JSON(http.StatusOK, entity.TagListResponse{Tags: catalog.UserGenerated(tags, systemTags)})
}

func (h *HTTPHandler) ListSystemTags(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbTags, err := h.repo.ListSystemTags(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list system tags")
		InternalError(c, "加载标签失败")
		return
	}

	tags := make([]entity.Tag, 0, len(dbTags))
	for _, dbTag := range dbTags {
		tags = append(tags, dbTag.AsTag())
	}
	c.JSON(http.StatusOK, entity.TagListResponse{Tags: tags})
}

// CreateSystemTag 管理端新建系统标签。重名不查重，由管理员自行治理。
func (h *HTTPHandler) CreateSystemTag(c *gin.Context) {
	var req entity.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		BadRequest(c, ErrCodeInvalidTag, "标签名称不能为空")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbTag := &entity.DbTag{
		ID:   uuid.NewString(),
		Name: name,
		Type: entity.TagTypeSystem,
	}
	if err := h.repo.CreateSystemTag(ctx, dbTag); err != nil {
		logrus.WithError(err).WithField("tag_name", name).Error("failed to create system tag")
		InternalError(c, "创建标签失败")
		return
	}

	c.JSON(http.StatusCreated, entity.TagDetailResponse{Tag: dbTag.AsTag()})
}

// DeleteSystemTag 删除系统标签。书上的标签快照不受影响（不做级联）。
func (h *HTTPHandler) DeleteSystemTag(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid tag id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// 仓库层对不存在的 id 直接视为已删除，删除是幂等的。
	if err := h.repo.DeleteSystemTag(ctx, id); err != nil {
		logrus.WithError(err).WithField("tag_id", id).Error("failed to delete system tag")
		InternalError(c, "删除标签失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *HTTPHandler) loadTagUniverse(c *gin.Context) ([]entity.Tag, []entity.DbBook, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	dbTags, err := h.repo.ListSystemTags(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list system tags")
		InternalError(c, "加载标签失败")
		return nil, nil, false
	}
	systemTags := make([]entity.Tag, 0, len(dbTags))
	for _, dbTag := range dbTags {
		systemTags = append(systemTags, dbTag.AsTag())
	}

	books, err := h.repo.ListBooks(ctx, 0)
	if err != nil {
		logrus.WithError(err).Error("failed to list books for tag universe")
		InternalError(c, "加载标签失败")
		return nil, nil, false
	}

	return systemTags, books, true
}
