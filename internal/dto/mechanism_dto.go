package dto

// CreateMechanismRequest 创建机构帖子请求
type CreateMechanismRequest struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	FileURL          string    `json:"file_url"`
	ThumbnailURL     *string   `json:"thumbnail_url"`
	Duration         *int      `json:"duration"`
	ReliabilityLevel *string   `json:"reliability_level"`
	IsPublished      *bool     `json:"is_published"`
	Categories       *[]string `json:"categories"`
}

// UpdateMechanismRequest 更新机构帖子请求
// 指针/NullableString区分"未提供"与显式取值:
//   - 未提供的字段保持原值
//   - thumbnail_url/reliability_level显式传null表示清空
//   - categories传空数组表示清空关联,不传表示不变
type UpdateMechanismRequest struct {
	Title            *string        `json:"title"`
	Description      *string        `json:"description"`
	FileURL          *string        `json:"file_url"`
	ThumbnailURL     NullableString `json:"thumbnail_url"`
	Duration         *int           `json:"duration"`
	ReliabilityLevel NullableString `json:"reliability_level"`
	IsPublished      *bool          `json:"is_published"`
	Categories       *[]string      `json:"categories"`
}

// FeedParams 列表查询参数
type FeedParams struct {
	Categories []string
	Search     string
	Sort       string
	Page       int
	PerPage    int
	Paginated  bool
}
