package sql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookr/internal/entity"

	"gorm.io/gorm"
)

// ListSystemTags returns every system tag in creation order. Duplicate names
// are allowed here; de-duplication happens at reconciliation time.
func (r *GormRepository) ListSystemTags(ctx context.Context) ([]entity.DbTag, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var tags []entity.DbTag
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateSystemTag inserts a new system tag.
func (r *GormRepository) CreateSystemTag(ctx context.Context, tag *entity.DbTag) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if tag == nil {
		return fmt.Errorf("tag is nil")
	}
	if strings.TrimSpace(tag.Name) == "" {
		return fmt.Errorf("tag name is empty")
	}
	return r.db.WithContext(ctx).Create(tag).Error
}

// GetSystemTag loads a system tag by id.
func (r *GormRepository) GetSystemTag(ctx context.Context, id string) (*entity.DbTag, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, fmt.Errorf("invalid tag id")
	}
	var tag entity.DbTag
	if err := r.db.WithContext(ctx).Where("id = ?", trimmed).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteSystemTag removes the tag with the given id. Deleting an absent tag
// is a no-op, and books already carrying a snapshot of the tag keep it.
func (r *GormRepository) DeleteSystemTag(ctx context.Context, id string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return fmt.Errorf("invalid tag id")
	}
	err := r.db.WithContext(ctx).Where("id = ?", trimmed).Delete(&entity.DbTag{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
