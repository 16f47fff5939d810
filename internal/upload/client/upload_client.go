// Package client uploads files to external object storage with
// short-lived credentials issued by the service.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"short_video_service/internal/upload/domain"
	errprocess "short_video_service/pkg/err"
)

// CredentialFetcher 取得單次上傳憑證
type CredentialFetcher interface {
	FetchCredentials(ctx context.Context, objectName string) (*domain.UploadCredentials, error)
}

// HTTPCredentialFetcher fetches upload credentials from the auth endpoint.
type HTTPCredentialFetcher struct {
	BaseURL      string
	SessionToken string
	HTTPClient   *http.Client
}

// FetchCredentials calls GET /api/auth/upload-auth with the session token.
// 失敗時回傳已分類的 UploadError，上傳端不用再猜原因。
func (f *HTTPCredentialFetcher) FetchCredentials(ctx context.Context, objectName string) (*domain.UploadCredentials, error) {
	httpClient := f.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	u := fmt.Sprintf("%s/api/auth/upload-auth?auth=%s&object=%s",
		strings.TrimRight(f.BaseURL, "/"),
		url.QueryEscape(f.SessionToken),
		url.QueryEscape(objectName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, domain.NewUploadError(domain.ErrKindUnknown, errprocess.Set(fmt.Sprintf("build upload-auth request: %v", err)))
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(ctx, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, domain.NewUploadError(domain.ErrKindServer, errprocess.Set(fmt.Sprintf("upload-auth status: %d", resp.StatusCode)))
	case resp.StatusCode != http.StatusOK:
		return nil, domain.NewUploadError(domain.ErrKindInvalidRequest, errprocess.Set(fmt.Sprintf("upload-auth status: %d", resp.StatusCode)))
	}

	var body struct {
		Success   bool   `json:"success"`
		UploadURL string `json:"uploadUrl"`
		Token     string `json:"token"`
		Expire    int64  `json:"expire"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domain.NewUploadError(domain.ErrKindServer, errprocess.Set(fmt.Sprintf("decode upload-auth response: %v", err)))
	}
	if !body.Success {
		return nil, domain.NewUploadError(domain.ErrKindServer, errprocess.Set("upload-auth rejected"))
	}
	return &domain.UploadCredentials{
		UploadURL: body.UploadURL,
		Token:     body.Token,
		Expire:    body.Expire,
	}, nil
}

// Client definition upload client
type Client struct {
	fetcher    CredentialFetcher
	httpClient *http.Client
}

// NewClient create an upload client
func NewClient(fetcher CredentialFetcher, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{fetcher: fetcher, httpClient: httpClient}
}

// Upload validates the file, fetches credentials, and PUTs the content
// to the signed URL. Validation failures return before any credentials
// are requested.
func (c *Client) Upload(ctx context.Context, file domain.File, fileType domain.FileType, onProgress domain.ProgressFunc) (*domain.UploadResult, error) {
	if err := validate(file, fileType); err != nil {
		return nil, err
	}

	creds, err := c.fetcher.FetchCredentials(ctx, file.Name)
	if err != nil {
		// 取得憑證失敗跟上傳失敗用同一套分類
		var uploadErr *domain.UploadError
		if errors.As(err, &uploadErr) {
			return nil, uploadErr
		}
		return nil, classifyTransport(ctx, err)
	}

	body := &progressReader{
		reader:     file.Content,
		total:      file.Size,
		onProgress: onProgress,
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, creds.UploadURL, body)
	if err != nil {
		return nil, domain.NewUploadError(domain.ErrKindUnknown, err)
	}
	req.ContentLength = file.Size
	if file.ContentType != "" {
		req.Header.Set("Content-Type", file.ContentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(ctx, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if onProgress != nil && body.lastPct != 100 {
			onProgress(100)
		}
		return &domain.UploadResult{URL: stripQuery(creds.UploadURL)}, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, domain.NewUploadError(domain.ErrKindInvalidRequest, fmt.Errorf("storage status: %d", resp.StatusCode))
	case resp.StatusCode >= 500:
		return nil, domain.NewUploadError(domain.ErrKindServer, fmt.Errorf("storage status: %d", resp.StatusCode))
	default:
		return nil, domain.NewUploadError(domain.ErrKindUnknown, fmt.Errorf("storage status: %d", resp.StatusCode))
	}
}

// classifyTransport 把 HTTP 傳輸層的失敗歸類：使用者中斷或網路問題
func classifyTransport(ctx context.Context, err error) *domain.UploadError {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return domain.NewUploadError(domain.ErrKindAborted, err)
	}
	return domain.NewUploadError(domain.ErrKindNetwork, err)
}

// validate 先檢查檔案本身，任何失敗都不會去要憑證
func validate(file domain.File, fileType domain.FileType) error {
	if fileType == domain.FileTypeVideo && !strings.HasPrefix(file.ContentType, "video/") {
		return domain.NewUploadError(domain.ErrKindInvalidRequest, fmt.Errorf("content type %q is not a video", file.ContentType))
	}
	if file.Size > domain.MaxUploadSize {
		return domain.NewUploadError(domain.ErrKindInvalidRequest, fmt.Errorf("file size %d exceeds limit", file.Size))
	}
	return nil
}

// stripQuery drops the signature query from a presigned URL, leaving
// the durable object URL.
func stripQuery(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	return u.String()
}

// progressReader counts bytes read and reports percent changes only.
type progressReader struct {
	reader     io.Reader
	total      int64
	read       int64
	lastPct    int
	onProgress domain.ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.reader.Read(b)
	p.read += int64(n)
	if p.onProgress != nil && p.total > 0 {
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct != p.lastPct {
			p.lastPct = pct
			p.onProgress(pct)
		}
	}
	return n, err
}
