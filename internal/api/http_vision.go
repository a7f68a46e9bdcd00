package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bookr/internal/entity"
	"bookr/internal/service"

	"github.com/gin-gonic/gin"
)

// ExtractBookInfo 把封面照片交给视觉模型识别书目信息。
// 识别不出来时返回 null，前端让用户手填即可。
func (h *HTTPHandler) ExtractBookInfo(c *gin.Context) {
	var req entity.VisionExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	info, err := h.bookService.ExtractCoverInfo(ctx, req.Image)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCover) {
			BadRequest(c, ErrCodeInvalidCover, "封面数据无法解析")
			return
		}
		InternalError(c, "封面识别失败")
		return
	}

	c.JSON(http.StatusOK, entity.VisionExtractResponse{Info: info})
}
