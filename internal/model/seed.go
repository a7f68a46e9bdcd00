package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookr/internal/config"
	"bookr/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var defaultSystemTags = []entity.DbTag{
	{ID: "tag-1", Name: "计算机科学", Type: entity.TagTypeSystem},
	{ID: "tag-2", Name: "文学", Type: entity.TagTypeSystem},
	{ID: "tag-3", Name: "历史", Type: entity.TagTypeSystem},
	{ID: "tag-4", Name: "五星推荐", Type: entity.TagTypeSystem},
	{ID: "tag-5", Name: "四星推荐", Type: entity.TagTypeSystem},
}

// Seed ensures the default system tags, the demo accounts, and the demo books
// exist. Existing rows are left alone, so re-running on an already-populated
// database changes nothing.
func Seed(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil {
		return nil
	}

	for _, seed := range defaultSystemTags {
		tag := seed
		_, err := repo.GetSystemTag(ctx, tag.ID)
		switch {
		case err == nil:
			continue
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := repo.CreateSystemTag(ctx, &tag); err != nil {
				return fmt.Errorf("seed system tag %q: %w", tag.Name, err)
			}
		default:
			return err
		}
	}

	if !cfg.SeedDemoData {
		return nil
	}

	demoUser, err := seedUser(ctx, repo, cfg, entity.DbUser{
		Email:     "user@example.com",
		Name:      "张三",
		Major:     "计算机科学",
		Phone:     "13800138000",
		Expertise: "前端开发, React",
		Role:      entity.UserRoleUser,
	})
	if err != nil {
		return err
	}

	demoAdmin, err := seedUser(ctx, repo, cfg, entity.DbUser{
		Email:     "admin@example.com",
		Name:      "管理员",
		Major:     "信息管理",
		Phone:     "13900139000",
		Expertise: "系统管理",
		Role:      entity.UserRoleAdmin,
	})
	if err != nil {
		return err
	}

	count, err := repo.CountBooks(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	books := []entity.DbBook{
		{
			Title:       "深入理解计算机系统",
			Author:      "Randal E. Bryant",
			Publisher:   "机械工业出版社",
			ISBN:        "9787111562286",
			PublishDate: "2016-11-01",
			Reason:      "计算机专业的圣经，必读！",
			Tags: entity.TagList{
				{ID: "tag-1", Name: "计算机科学", Type: entity.TagTypeSystem},
				{ID: "tag-4", Name: "五星推荐", Type: entity.TagTypeSystem},
				{ID: uuid.NewString(), Name: "CSAPP", Type: entity.TagTypeUser},
			},
			CoverPath:       "https://picsum.photos/seed/csapp/300/400",
			RecommenderID:   demoUser.ID,
			RecommenderName: demoUser.Name,
		},
		{
			Title:       "三体",
			Author:      "刘慈欣",
			Publisher:   "重庆出版社",
			ISBN:        "9787229160935",
			PublishDate: "2021-08-01",
			Reason:      "中国科幻的巅峰之作。",
			Tags: entity.TagList{
				{ID: "tag-2", Name: "文学", Type: entity.TagTypeSystem},
				{ID: "tag-4", Name: "五星推荐", Type: entity.TagTypeSystem},
			},
			CoverPath:       "https://picsum.photos/seed/santi/300/400",
			RecommenderID:   demoAdmin.ID,
			RecommenderName: demoAdmin.Name,
		},
	}
	for i := range books {
		if err := repo.CreateBook(ctx, &books[i]); err != nil {
			return fmt.Errorf("seed book %q: %w", books[i].Title, err)
		}
	}

	return nil
}

func seedUser(ctx context.Context, repo Repository, cfg config.Config, seed entity.DbUser) (*entity.DbUser, error) {
	existing, err := repo.GetUserByEmail(ctx, seed.Email)
	switch {
	case err == nil:
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, err
	}

	user := seed
	user.IsActive = true
	user.UniqueLink = BuildUniqueLink(cfg.PublicBaseURL)
	if err := repo.CreateUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("seed user %q: %w", seed.Email, err)
	}
	return &user, nil
}

// BuildUniqueLink generates the one-time invite link assigned at
// registration. The link never changes afterwards.
func BuildUniqueLink(publicBaseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")
	if base == "" {
		base = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/invite/%s", base, uuid.NewString())
}
