package entity

import "time"

// DbBook stores a recommended book. The Tags column holds a snapshot of the
// tag values chosen when the book was created or last edited; deleting a
// system tag afterwards leaves saved books untouched.
type DbBook struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Author      string `gorm:"column:author;type:varchar(255)" json:"author"`
	Publisher   string `gorm:"column:publisher;type:varchar(255)" json:"publisher"`
	ISBN        string `gorm:"column:isbn;type:varchar(32)" json:"isbn"`
	PublishDate string `gorm:"column:publish_date;type:varchar(32)" json:"publish_date"`
	Reason      string `gorm:"column:reason;type:text" json:"reason"`

	Tags TagList `gorm:"column:tags;type:json" json:"tags"`

	// 封面：存储相对路径（本地/对象存储），或外部图片的完整 URL。
	CoverPath string `gorm:"column:cover_path;type:varchar(512)" json:"cover_path"`

	RecommenderID   uint   `gorm:"column:recommender_id;index" json:"recommender_id"`
	RecommenderName string `gorm:"column:recommender_name;type:varchar(255)" json:"recommender_name"`
}

// TableName 指定表名
func (DbBook) TableName() string {
	return "books"
}

// BookQuery narrows the book listing.
type BookQuery struct {
	Query         string `json:"q" form:"q" query:"q"`
	RecommenderID uint   `json:"recommender_id" form:"recommender_id" query:"recommender_id"`
}

// BookItem is a book as returned to clients, with the cover resolved to a
// public URL.
type BookItem struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Publisher       string    `json:"publisher"`
	ISBN            string    `json:"isbn"`
	PublishDate     string    `json:"publish_date"`
	Reason          string    `json:"reason"`
	Tags            []Tag     `json:"tags"`
	CoverURL        string    `json:"cover_url,omitempty"`
	RecommenderID   uint      `json:"recommender_id"`
	RecommenderName string    `json:"recommender_name"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookListResponse struct {
	Books []BookItem `json:"books"`
}

type BookDetailResponse struct {
	Book BookItem `json:"book"`
}

type BookCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	ISBN        string `json:"isbn"`
	PublishDate string `json:"publish_date"`
	Reason      string `json:"reason"`
	Tags        []Tag  `json:"tags"`
	// CoverData 为 base64/data URL 的封面图片，CoverURL 为外部图片地址，二选一。
	CoverData string `json:"cover_data"`
	CoverURL  string `json:"cover_url"`
}

type BookUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Publisher   *string `json:"publisher,omitempty"`
	ISBN        *string `json:"isbn,omitempty"`
	PublishDate *string `json:"publish_date,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	Tags        *[]Tag  `json:"tags,omitempty"`
	CoverData   *string `json:"cover_data,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
}
