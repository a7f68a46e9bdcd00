package api

import (
	"context"
	"net/http"
	"time"

	"bookr/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Stats 后台统计面板：用户数、图书数、人均推荐数和每人的推荐量排行。
func (h *HTTPHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	users, err := h.repo.AllUsers(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load users for stats")
		InternalError(c, "加载统计失败")
		return
	}

	books, err := h.repo.ListBooks(ctx, 0)
	if err != nil {
		logrus.WithError(err).Error("failed to load books for stats")
		InternalError(c, "加载统计失败")
		return
	}

	c.JSON(http.StatusOK, catalog.Aggregate(users, books))
}
