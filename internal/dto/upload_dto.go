package dto

// UploadResponse 文件上传响应
type UploadResponse struct {
	URL          string `json:"url"`
	Duration     int    `json:"duration"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
}
