package sql

import (
	"context"
	"fmt"

	"bookr/internal/entity"

	"gorm.io/gorm"
)

// CreateBook persists a new book record.
func (r *GormRepository) CreateBook(ctx context.Context, book *entity.DbBook) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if book == nil {
		return fmt.Errorf("book is nil")
	}
	return r.db.WithContext(ctx).Create(book).Error
}

// UpdateBook applies a partial update. Only fields present in updates change.
func (r *GormRepository) UpdateBook(ctx context.Context, id uint, updates entity.BookUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid book id")
	}
	fields := updates.ToMap()
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entity.DbBook{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetBook loads a book by ID.
func (r *GormRepository) GetBook(ctx context.Context, id uint) (*entity.DbBook, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid book id")
	}
	var book entity.DbBook
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// ListBooks returns the catalog, newest first. A non-zero recommenderID
// narrows the list to one user's recommendations.
func (r *GormRepository) ListBooks(ctx context.Context, recommenderID uint) ([]entity.DbBook, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbBook{})
	if recommenderID > 0 {
		query = query.Where("recommender_id = ?", recommenderID)
	}

	var books []entity.DbBook
	if err := query.Order("id DESC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// DeleteBook removes a book by ID.
func (r *GormRepository) DeleteBook(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid book id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbBook{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountBooks returns total book count.
func (r *GormRepository) CountBooks(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbBook{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
