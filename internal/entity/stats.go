package entity

// UserBookCount pairs a user's display name with the number of books they
// recommended.
type UserBookCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatsData 后台统计面板数据。
type StatsData struct {
	UserCount      int             `json:"user_count"`
	BookCount      int             `json:"book_count"`
	AveragePerUser float64         `json:"average_per_user"`
	PerUserCounts  []UserBookCount `json:"per_user_counts"`
}

// AIBookInfo holds the fields the vision collaborator managed to read off a
// cover image. Missing fields stay empty; a nil result means nothing was
// recognised.
type AIBookInfo struct {
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	ISBN      string `json:"isbn,omitempty"`
}

type VisionExtractRequest struct {
	// Image 为 base64 或 data URL 形式的封面图片。
	Image string `json:"image" binding:"required"`
}

type VisionExtractResponse struct {
	Info *AIBookInfo `json:"info"`
}
