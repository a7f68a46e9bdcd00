package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	TagTypeSystem = "system"
	TagTypeUser   = "user"
)

// Tag 标签的展示/快照形态。图书保存的是标签值的副本，不引用标签表。
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// DbTag 表示管理员维护的系统标签。
// 名称不做唯一约束：重名标签在归并展示时按小写名称折叠。
type DbTag struct {
	ID        string    `gorm:"column:id;type:varchar(64);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Type string `gorm:"column:type;type:varchar(16);not null;default:system" json:"type"`
}

// TableName 指定表名
func (DbTag) TableName() string {
	return "system_tags"
}

// AsTag 转换为快照形态。
func (t DbTag) AsTag() Tag {
	return Tag{ID: t.ID, Name: t.Name, Type: t.Type}
}

// TagList 以 JSON 格式存储图书携带的标签快照。
type TagList []Tag

// Value 实现 driver.Valuer 接口。
func (l TagList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]Tag(l))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan 实现 sql.Scanner 接口。
func (l *TagList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			*l = TagList{}
			return nil
		}
		return json.Unmarshal(v, (*[]Tag)(l))
	case string:
		if v == "" {
			*l = TagList{}
			return nil
		}
		return json.Unmarshal([]byte(v), (*[]Tag)(l))
	default:
		return fmt.Errorf("unsupported type for TagList: %T", value)
	}
}

// ToSlice 返回底层切片的副本。
func (l TagList) ToSlice() []Tag {
	if len(l) == 0 {
		return []Tag{}
	}
	out := make([]Tag, len(l))
	copy(out, l)
	return out
}

type TagListResponse struct {
	Tags []Tag `json:"tags"`
}

type TagDetailResponse struct {
	Tag Tag `json:"tag"`
}

type TagCreateRequest struct {
	Name string `json:"name" binding:"required"`
}
