package catalog

import (
	"testing"

	"bookr/internal/entity"
)

func sysTag(id, name string) entity.Tag {
	return entity.Tag{ID: id, Name: name, Type: entity.TagTypeSystem}
}

func userTag(id, name string) entity.Tag {
	return entity.Tag{ID: id, Name: name, Type: entity.TagTypeUser}
}

func TestReconcileOverride(t *testing.T) {
	system := []entity.Tag{sysTag("tag-1", "Fiction"), sysTag("tag-2", "History")}
	fromBooks := []entity.Tag{userTag("user-tag-1", "fiction")}

	merged := Reconcile(system, fromBooks)

	if len(merged) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(merged))
	}
	// 位置保持首次出现的顺序，值取后插入者
	if merged[0].ID != "user-tag-1" || merged[0].Type != entity.TagTypeUser {
		t.Errorf("expected book tag to overwrite in place, got %+v", merged[0])
	}
	if merged[0].Name != "fiction" {
		t.Errorf("expected overriding name %q, got %q", "fiction", merged[0].Name)
	}
	if merged[1].ID != "tag-2" {
		t.Errorf("expected history tag second, got %+v", merged[1])
	}
}

func TestReconcileIdempotent(t *testing.T) {
	system := []entity.Tag{sysTag("tag-1", "计算机科学"), sysTag("tag-2", "文学")}
	fromBooks := []entity.Tag{userTag("user-tag-1", "CSAPP"), userTag("user-tag-2", "文学")}

	once := Reconcile(system, fromBooks)
	twice := Reconcile(once, nil)

	if len(once) != len(twice) {
		t.Fatalf("expected same length, got %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("index %d: expected %+v, got %+v", i, once[i], twice[i])
		}
	}
}

func TestReconcilePreservesFirstSeenOrder(t *testing.T) {
	system := []entity.Tag{sysTag("a", "Alpha"), sysTag("b", "Beta")}
	fromBooks := []entity.Tag{userTag("c", "Gamma"), userTag("d", "ALPHA")}

	merged := Reconcile(system, fromBooks)

	wantNames := []string{"ALPHA", "Beta", "Gamma"}
	if len(merged) != len(wantNames) {
		t.Fatalf("expected %d tags, got %d", len(wantNames), len(merged))
	}
	for i, want := range wantNames {
		if merged[i].Name != want {
			t.Errorf("index %d: expected %q, got %q", i, want, merged[i].Name)
		}
	}
}

func TestUserGenerated(t *testing.T) {
	system := []entity.Tag{sysTag("tag-1", "Fiction")}
	all := []entity.Tag{
		sysTag("tag-1", "Fiction"),
		userTag("u-1", "fiction"), // 被系统标签吸收
		userTag("u-2", "SciFi"),
	}

	got := UserGenerated(all, system)
	if len(got) != 1 || got[0].ID != "u-2" {
		t.Fatalf("expected only SciFi, got %+v", got)
	}

	// 删除系统标签后重新推导，被吸收的用户标签回到用户桶
	got = UserGenerated(all, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 user tags after system tag removal, got %d", len(got))
	}
}

func TestToggleTagIsIdentityBased(t *testing.T) {
	a := sysTag("tag-1", "Fiction")
	b := userTag("u-1", "fiction") // 同名不同 id

	draft := []entity.Tag{a}

	draft = ToggleTag(draft, b)
	if len(draft) != 2 {
		t.Fatalf("expected same-name different-id tag to be appended, got %+v", draft)
	}

	draft = ToggleTag(draft, b)
	if len(draft) != 1 || draft[0].ID != "tag-1" {
		t.Fatalf("expected toggle twice to restore original draft, got %+v", draft)
	}
}

func TestAddUserTag(t *testing.T) {
	tests := []struct {
		name    string
		draft   []entity.Tag
		rawName string
		wantLen int
	}{
		{
			name:    "空名称不变",
			draft:   []entity.Tag{sysTag("tag-1", "Go")},
			rawName: "   ",
			wantLen: 1,
		},
		{
			name:    "大小写重名不变",
			draft:   []entity.Tag{sysTag("tag-1", "go")},
			rawName: "Go",
			wantLen: 1,
		},
		{
			name:    "新名称追加",
			draft:   []entity.Tag{sysTag("tag-1", "Go")},
			rawName: " Rust ",
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddUserTag(tt.draft, tt.rawName)
			if len(got) != tt.wantLen {
				t.Fatalf("expected %d tags, got %+v", tt.wantLen, got)
			}
			if tt.wantLen > len(tt.draft) {
				added := got[len(got)-1]
				if added.Type != entity.TagTypeUser {
					t.Errorf("expected user type, got %q", added.Type)
				}
				if added.Name != "Rust" {
					t.Errorf("expected trimmed name, got %q", added.Name)
				}
				if added.ID == "" {
					t.Error("expected a freshly generated id")
				}
			}
		})
	}
}

func TestDedupeTags(t *testing.T) {
	tags := []entity.Tag{
		sysTag("tag-1", "Fiction"),
		userTag("u-1", "fiction"),
		userTag("u-2", "SciFi"),
	}

	got := DedupeTags(tags)
	if len(got) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(got))
	}
	if got[0].ID != "tag-1" {
		t.Errorf("expected first occurrence to win, got %+v", got[0])
	}
	if got[1].Name != "SciFi" {
		t.Errorf("expected SciFi kept, got %+v", got[1])
	}
}

func TestSameTagEquality(t *testing.T) {
	a := sysTag("tag-1", "Fiction")
	b := userTag("u-1", "FICTION")

	if SameTagIdentity(a, b) {
		t.Error("different ids must not be identical")
	}
	if !SameTagName(a, b) {
		t.Error("names differing only by case must collapse")
	}
}
