package entity

// UserUpdates 用户更新字段
type UserUpdates struct {
	Name      *string
	Major     *string
	Phone     *string
	Expertise *string
	Role      *string
	IsActive  *bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u UserUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Major != nil {
		updates["major"] = *u.Major
	}
	if u.Phone != nil {
		updates["phone"] = *u.Phone
	}
	if u.Expertise != nil {
		updates["expertise"] = *u.Expertise
	}
	if u.Role != nil {
		updates["role"] = *u.Role
	}
	if u.IsActive != nil {
		updates["is_active"] = *u.IsActive
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u UserUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// BookUpdates 图书更新字段。只有非 nil 的字段会被写入（合并语义）。
type BookUpdates struct {
	Title       *string
	Author      *string
	Publisher   *string
	ISBN        *string
	PublishDate *string
	Reason      *string
	Tags        *TagList
	CoverPath   *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u BookUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Author != nil {
		updates["author"] = *u.Author
	}
	if u.Publisher != nil {
		updates["publisher"] = *u.Publisher
	}
	if u.ISBN != nil {
		updates["isbn"] = *u.ISBN
	}
	if u.PublishDate != nil {
		updates["publish_date"] = *u.PublishDate
	}
	if u.Reason != nil {
		updates["reason"] = *u.Reason
	}
	if u.Tags != nil {
		updates["tags"] = *u.Tags
	}
	if u.CoverPath != nil {
		updates["cover_path"] = *u.CoverPath
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u BookUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
