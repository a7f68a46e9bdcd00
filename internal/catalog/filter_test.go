package catalog

import (
	"testing"

	"bookr/internal/entity"
)

func sampleBooks() []entity.DbBook {
	return []entity.DbBook{
		{
			ID:              1,
			Title:           "Go程序设计语言",
			Author:          "Alan A. A. Donovan",
			RecommenderName: "张三",
			Tags:            entity.TagList{{ID: "t1", Name: "计算机科学", Type: entity.TagTypeSystem}},
		},
		{
			ID:              2,
			Title:           "三体",
			Author:          "刘慈欣",
			RecommenderName: "李四",
			Tags:            entity.TagList{{ID: "t2", Name: "SciFi", Type: entity.TagTypeUser}},
		},
		{
			ID:              3,
			Title:           "深入理解计算机系统",
			Author:          "Randal E. Bryant",
			RecommenderName: "张三",
			Tags:            entity.TagList{},
		},
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	books := sampleBooks()
	got := Filter(books, "")
	if len(got) != len(books) {
		t.Fatalf("expected %d books, got %d", len(books), len(got))
	}
	for i := range books {
		if got[i].ID != books[i].ID {
			t.Errorf("index %d: expected id %d, got %d", i, books[i].ID, got[i].ID)
		}
	}
}

func TestFilterFields(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []uint
	}{
		{name: "标题大小写不敏感", query: "GO", wantIDs: []uint{1}},
		{name: "作者匹配", query: "刘慈欣", wantIDs: []uint{2}},
		{name: "推荐人匹配", query: "张三", wantIDs: []uint{1, 3}},
		{name: "仅标签名匹配", query: "scifi", wantIDs: []uint{2}},
		{name: "子串而非整词", query: "程", wantIDs: []uint{1}},
		{name: "无匹配", query: "nonexistent", wantIDs: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleBooks(), tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d books, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("index %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	books := sampleBooks()
	got := Filter(books, "计算机")
	if len(got) != 2 {
		t.Fatalf("expected 2 books, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("expected input order preserved, got ids %d,%d", got[0].ID, got[1].ID)
	}
}
