package domain

import "io"

// FileType 上傳檔案類型提示
type FileType string

const (
	// FileTypeVideo upload file is a video
	FileTypeVideo FileType = "video"
	// FileTypeImage upload file is an image
	FileTypeImage FileType = "image"
)

// MaxUploadSize 上傳檔案大小上限 (100 MiB)
const MaxUploadSize = 100 * 1024 * 1024

// File 描述一個待上傳的檔案
type File struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// UploadCredentials short-lived signed upload credentials issued by the server
type UploadCredentials struct {
	UploadURL string `json:"uploadUrl"`
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
}

// UploadResult 上傳完成後外部儲存回傳的結果
type UploadResult struct {
	URL string `json:"url"`
}

// ProgressFunc reports upload progress as a 0-100 percentage.
type ProgressFunc func(percent int)

// ErrKind classifies upload failures
type ErrKind string

const (
	// ErrKindNetwork 網路層失敗
	ErrKindNetwork ErrKind = "network"
	// ErrKindServer 外部儲存回 5xx
	ErrKindServer ErrKind = "server"
	// ErrKindInvalidRequest 檔案驗證失敗或外部儲存回 4xx
	ErrKindInvalidRequest ErrKind = "invalid_request"
	// ErrKindAborted 使用者中斷上傳
	ErrKindAborted ErrKind = "aborted"
	// ErrKindUnknown 無法歸類的失敗
	ErrKindUnknown ErrKind = "unknown"
)

// 每種失敗類型對應一句給使用者看的訊息，詳細錯誤只記在 server log
var errMessages = map[ErrKind]string{
	ErrKindNetwork:        "Network error. Please check your connection and try again.",
	ErrKindServer:         "Server error. Please try again later.",
	ErrKindInvalidRequest: "Invalid request. Please check your file and try again.",
	ErrKindAborted:        "Upload was cancelled. Please try again.",
	ErrKindUnknown:        "An unexpected error occurred. Please try again.",
}

// UploadError definition upload error with classification
type UploadError struct {
	Kind  ErrKind
	Cause error
}

// NewUploadError create an UploadError
func NewUploadError(kind ErrKind, cause error) *UploadError {
	return &UploadError{Kind: kind, Cause: cause}
}

func (e *UploadError) Error() string {
	if msg, ok := errMessages[e.Kind]; ok {
		return msg
	}
	return errMessages[ErrKindUnknown]
}

// Unwrap returns the underlying cause.
func (e *UploadError) Unwrap() error {
	return e.Cause
}
