package catalog

import (
	"testing"

	"bookr/internal/entity"
)

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, nil)

	if stats.UserCount != 0 {
		t.Errorf("expected 0 users, got %d", stats.UserCount)
	}
	if stats.BookCount != 0 {
		t.Errorf("expected 0 books, got %d", stats.BookCount)
	}
	// 除零保护：无用户时平均值定义为 0
	if stats.AveragePerUser != 0 {
		t.Errorf("expected average 0, got %v", stats.AveragePerUser)
	}
	if len(stats.PerUserCounts) != 0 {
		t.Errorf("expected no per-user counts, got %+v", stats.PerUserCounts)
	}
}

func TestAggregateCountsAndOrder(t *testing.T) {
	users := []entity.DbUser{
		{ID: 1, Name: "张三"},
		{ID: 2, Name: "李四"},
		{ID: 3, Name: "王五"},
	}
	books := []entity.DbBook{
		{ID: 1, RecommenderID: 2},
		{ID: 2, RecommenderID: 2},
		{ID: 3, RecommenderID: 2},
		{ID: 4, RecommenderID: 1},
	}

	stats := Aggregate(users, books)

	if stats.UserCount != 3 || stats.BookCount != 4 {
		t.Fatalf("expected 3 users / 4 books, got %d / %d", stats.UserCount, stats.BookCount)
	}
	if stats.AveragePerUser != 1.33 {
		t.Errorf("expected average 1.33, got %v", stats.AveragePerUser)
	}
	if stats.PerUserCounts[0].Name != "李四" || stats.PerUserCounts[0].Count != 3 {
		t.Errorf("expected 李四 first with 3, got %+v", stats.PerUserCounts[0])
	}
	if stats.PerUserCounts[1].Name != "张三" || stats.PerUserCounts[1].Count != 1 {
		t.Errorf("expected 张三 second with 1, got %+v", stats.PerUserCounts[1])
	}
	if stats.PerUserCounts[2].Count != 0 {
		t.Errorf("expected trailing zero count, got %+v", stats.PerUserCounts[2])
	}
}

func TestAggregateIgnoresOrphanedBooks(t *testing.T) {
	// 用户删除后保留其图书（孤儿策略）；孤儿不出现在 per-user 列表，但计入总数
	users := []entity.DbUser{{ID: 1, Name: "张三"}}
	books := []entity.DbBook{
		{ID: 1, RecommenderID: 1},
		{ID: 2, RecommenderID: 99},
	}

	stats := Aggregate(users, books)

	if stats.BookCount != 2 {
		t.Errorf("expected orphaned book counted in total, got %d", stats.BookCount)
	}
	if len(stats.PerUserCounts) != 1 || stats.PerUserCounts[0].Count != 1 {
		t.Errorf("expected single per-user entry with count 1, got %+v", stats.PerUserCounts)
	}
	if stats.AveragePerUser != 2 {
		t.Errorf("expected average 2, got %v", stats.AveragePerUser)
	}
}
