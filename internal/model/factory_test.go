package model

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"bookr/internal/config"
	"bookr/internal/entity"

	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()

	cfg := &config.Config{
		DBType: DBTypeSQLite,
		DBPath: filepath.Join(t.TempDir(), "test.db"),
	}
	repo, err := InitRepository(cfg)
	if err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}
	return repo
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &entity.DbUser{
		Email:      "dup@example.com",
		Name:       "张三",
		Role:       entity.UserRoleUser,
		UniqueLink: "http://localhost/invite/a",
		IsActive:   true,
	}
	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := &entity.DbUser{
		Email:      "dup@example.com",
		Name:       "李四",
		Role:       entity.UserRoleUser,
		UniqueLink: "http://localhost/invite/b",
		IsActive:   true,
	}
	err := repo.CreateUser(ctx, second)
	if err == nil {
		t.Fatal("expected duplicate email to fail")
	}
	// 上层靠 gorm.ErrDuplicatedKey 把唯一约束冲突映射成 400
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestDeleteSystemTagKeepsBookSnapshots(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	tag := &entity.DbTag{ID: "tag-scifi", Name: "科幻", Type: entity.TagTypeSystem}
	if err := repo.CreateSystemTag(ctx, tag); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	book := &entity.DbBook{
		Title: "三体",
		Tags:  entity.TagList{tag.AsTag()},
	}
	if err := repo.CreateBook(ctx, book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.DeleteSystemTag(ctx, tag.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := repo.ListSystemTags(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("expected system tag removed, got %d tags", len(tags))
	}

	// 书上的标签是保存时的快照，删系统标签不做级联
	saved, err := repo.GetBook(ctx, book.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(saved.Tags) != 1 || saved.Tags[0].ID != "tag-scifi" || saved.Tags[0].Name != "科幻" {
		t.Fatalf("book tag snapshot changed: %+v", saved.Tags)
	}
}

func TestDeleteSystemTagIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)

	if err := repo.DeleteSystemTag(context.Background(), "never-existed"); err != nil {
		t.Fatalf("deleting an absent tag must be a no-op, got %v", err)
	}
}
