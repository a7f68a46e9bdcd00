package model

import (
	"context"

	"bookr/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 用户管理
	CreateUser(ctx context.Context, user *entity.DbUser) error
	UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) error
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	ListUsers(ctx context.Context, params *entity.UserQuery) ([]entity.DbUser, *entity.Meta, error)
	AllUsers(ctx context.Context) ([]entity.DbUser, error)
	DeleteUser(ctx context.Context, id uint) error
	CountUsers(ctx context.Context) (int64, error)

	// 图书
	CreateBook(ctx context.Context, book *entity.DbBook) error
	UpdateBook(ctx context.Context, id uint, updates entity.BookUpdates) error
	GetBook(ctx context.Context, id uint) (*entity.DbBook, error)
	ListBooks(ctx context.Context, recommenderID uint) ([]entity.DbBook, error)
	DeleteBook(ctx context.Context, id uint) error
	CountBooks(ctx context.Context) (int64, error)

	// 系统标签
	CreateSystemTag(ctx context.Context, tag *entity.DbTag) error
	ListSystemTags(ctx context.Context) ([]entity.DbTag, error)
	GetSystemTag(ctx context.Context, id string) (*entity.DbTag, error)
	DeleteSystemTag(ctx context.Context, id string) error
}
