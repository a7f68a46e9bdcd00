package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bookr/internal/entity"
	"bookr/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (h *HTTPHandler) ListUsers(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "user repository not available")
		return
	}

	var query entity.UserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = 20
	}
	if query.PageSize > 100 {
		query.PageSize = 100
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, meta, err := h.repo.ListUsers(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list users")
		InternalError(c, "加载用户失败")
		return
	}

	response := entity.UserListResponse{
		Users: make([]entity.UserSummary, 0, len(users)),
		Meta:  meta,
	}
	for idx := range users {
		response.Users = append(response.Users, makeUserSummary(&users[idx]))
	}

	c.JSON(http.StatusOK, response)
}

func (h *HTTPHandler) CreateUser(c *gin.Context) {
	var req entity.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		MissingField(c, "email")
		return
	}

	role := sanitizeRole(req.Role)
	if role == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid role")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := &entity.DbUser{
		Email:      email,
		Name:       strings.TrimSpace(req.Name),
		Major:      strings.TrimSpace(req.Major),
		Phone:      strings.TrimSpace(req.Phone),
		Expertise:  strings.TrimSpace(req.Expertise),
		Role:       role,
		UniqueLink: model.BuildUniqueLink(h.cfg.PublicBaseURL),
		IsActive:   isActive,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			BadRequest(c, ErrCodeEmailExists, "该邮箱已注册")
			return
		}
		logrus.WithError(err).Error("failed to create user")
		InternalError(c, "创建用户失败")
		return
	}

	c.JSON(http.StatusCreated, makeUserSummary(user))
}

func (h *HTTPHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req entity.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	var updates entity.UserUpdates
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			BadRequest(c, ErrCodeInvalidRequest, "name must not be empty")
			return
		}
		updates.Name = &name
	}
	if req.Major != nil {
		major := strings.TrimSpace(*req.Major)
		updates.Major = &major
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		updates.Phone = &phone
	}
	if req.Expertise != nil {
		expertise := strings.TrimSpace(*req.Expertise)
		updates.Expertise = &expertise
	}
	if req.Role != nil {
		role := sanitizeRole(*req.Role)
		if role == "" {
			BadRequest(c, ErrCodeInvalidRequest, "invalid role")
			return
		}
		updates.Role = &role
	}
	if req.IsActive != nil {
		updates.IsActive = req.IsActive
	}

	if updates.IsEmpty() {
		BadRequest(c, ErrCodeInvalidRequest, "no fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.UpdateUser(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeUserNotFound, "用户不存在")
			return
		}
		logrus.WithError(err).WithField("user_id", id).Error("failed to update user")
		InternalError(c, "更新用户失败")
		return
	}

	dbUser, err := h.repo.GetUserByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("user_id", id).Error("failed to reload user")
		InternalError(c, "更新用户失败")
		return
	}

	c.JSON(http.StatusOK, makeUserSummary(dbUser))
}

// DeleteUser 删除用户。其推荐的书保留并继续展示快照的推荐人姓名。
func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	requestUser := CurrentUser(c)
	if requestUser != nil && requestUser.ID == id {
		BadRequest(c, ErrCodeCannotDeleteSelf, "不能删除当前登录账户")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeUserNotFound, "用户不存在")
			return
		}
		logrus.WithError(err).WithField("user_id", id).Error("failed to delete user")
		InternalError(c, "删除用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func sanitizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case entity.UserRoleAdmin:
		return entity.UserRoleAdmin
	case entity.UserRoleUser:
		return entity.UserRoleUser
	default:
		return ""
	}
}

func parseUserID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid user id")
		return 0, false
	}
	return uint(parsed), true
}
