package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"short_video_service/internal/upload/domain"
	"short_video_service/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.SetNewNop()
	m.Run()
}

// stubFetcher 回傳固定憑證，並記錄是否被呼叫
type stubFetcher struct {
	creds  *domain.UploadCredentials
	err    error
	called bool
}

func (s *stubFetcher) FetchCredentials(_ context.Context, _ string) (*domain.UploadCredentials, error) {
	s.called = true
	return s.creds, s.err
}

func videoFile(content string) domain.File {
	return domain.File{
		Name:        "clip.mp4",
		Size:        int64(len(content)),
		ContentType: "video/mp4",
		Content:     strings.NewReader(content),
	}
}

func TestUploadSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	fetcher := &stubFetcher{creds: &domain.UploadCredentials{UploadURL: srv.URL + "/videos/clip.mp4?sig=abc"}}
	c := NewClient(fetcher, srv.Client())

	var lastPct int
	result, err := c.Upload(context.Background(), videoFile("0123456789"), domain.FileTypeVideo, func(pct int) {
		lastPct = pct
	})
	assert.NoError(t, err)
	assert.Equal(t, srv.URL+"/videos/clip.mp4", result.URL)
	assert.Equal(t, 100, lastPct)
}

func TestUploadValidationShortCircuits(t *testing.T) {
	fetcher := &stubFetcher{}
	c := NewClient(fetcher, http.DefaultClient)

	file := domain.File{
		Name:        "page.html",
		Size:        10,
		ContentType: "text/html",
		Content:     strings.NewReader("0123456789"),
	}
	_, err := c.Upload(context.Background(), file, domain.FileTypeVideo, nil)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, domain.ErrKindInvalidRequest, uploadErr.Kind)
	assert.Equal(t, "Invalid request. Please check your file and try again.", uploadErr.Error())
	assert.False(t, fetcher.called, "credentials should not be fetched for an invalid file")
}

func TestUploadSizeLimit(t *testing.T) {
	fetcher := &stubFetcher{}
	c := NewClient(fetcher, http.DefaultClient)

	file := domain.File{
		Name:        "big.mp4",
		Size:        domain.MaxUploadSize + 1,
		ContentType: "video/mp4",
		Content:     strings.NewReader(""),
	}
	_, err := c.Upload(context.Background(), file, domain.FileTypeVideo, nil)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, domain.ErrKindInvalidRequest, uploadErr.Kind)
	assert.False(t, fetcher.called)
}

func TestUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	fetcher := &stubFetcher{creds: &domain.UploadCredentials{UploadURL: srv.URL + "/videos/clip.mp4"}}
	c := NewClient(fetcher, srv.Client())

	_, err := c.Upload(context.Background(), videoFile("data"), domain.FileTypeVideo, nil)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, domain.ErrKindServer, uploadErr.Kind)
	assert.Equal(t, "Server error. Please try again later.", uploadErr.Error())
}

func TestUploadRejectedByStorage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	fetcher := &stubFetcher{creds: &domain.UploadCredentials{UploadURL: srv.URL + "/videos/clip.mp4"}}
	c := NewClient(fetcher, srv.Client())

	_, err := c.Upload(context.Background(), videoFile("data"), domain.FileTypeVideo, nil)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, domain.ErrKindInvalidRequest, uploadErr.Kind)
}

func TestUploadAborted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	fetcher := &stubFetcher{creds: &domain.UploadCredentials{UploadURL: srv.URL + "/videos/clip.mp4"}}
	c := NewClient(fetcher, srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Upload(ctx, videoFile("data"), domain.FileTypeVideo, nil)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, domain.ErrKindAborted, uploadErr.Kind)
	assert.Equal(t, "Upload was cancelled. Please try again.", uploadErr.Error())
}

func TestUploadNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close() // connection refused from here on

	fetcher := &stubFetcher{creds: &domain.UploadCredentials{UploadURL: url + "/videos/clip.mp4"}}
	c := NewClient(fetcher, http.DefaultClient)

	_, err := c.Upload(context.Background(), videoFile("data"), domain.FileTypeVideo, nil)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, domain.ErrKindNetwork, uploadErr.Kind)
	assert.Equal(t, "Network error. Please check your connection and try again.", uploadErr.Error())
}

func TestUploadCredentialFailureKeepsClassification(t *testing.T) {
	// fetcher 已經分類過的錯誤原樣帶出
	fetcher := &stubFetcher{err: domain.NewUploadError(domain.ErrKindServer, errors.New("upload-auth status: 503"))}
	c := NewClient(fetcher, http.DefaultClient)

	_, err := c.Upload(context.Background(), videoFile("data"), domain.FileTypeVideo, nil)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, domain.ErrKindServer, uploadErr.Kind)
	assert.Equal(t, "Server error. Please try again later.", uploadErr.Error())
}

func TestUploadCredentialFetchNetworkError(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	c := NewClient(fetcher, http.DefaultClient)

	_, err := c.Upload(context.Background(), videoFile("data"), domain.FileTypeVideo, nil)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, domain.ErrKindNetwork, uploadErr.Kind)
	assert.Equal(t, "Network error. Please check your connection and try again.", uploadErr.Error())
}

func TestUploadCredentialFetchAborted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	fetcher := &HTTPCredentialFetcher{BaseURL: srv.URL, SessionToken: "t", HTTPClient: srv.Client()}
	c := NewClient(fetcher, srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Upload(ctx, videoFile("data"), domain.FileTypeVideo, nil)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, domain.ErrKindAborted, uploadErr.Kind)
	assert.Equal(t, "Upload was cancelled. Please try again.", uploadErr.Error())
}

func TestFetchCredentialsStatusClassification(t *testing.T) {
	cases := []struct {
		status int
		kind   domain.ErrKind
	}{
		{http.StatusInternalServerError, domain.ErrKindServer},
		{http.StatusServiceUnavailable, domain.ErrKindServer},
		{http.StatusUnauthorized, domain.ErrKindInvalidRequest},
		{http.StatusBadRequest, domain.ErrKindInvalidRequest},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))

		fetcher := &HTTPCredentialFetcher{BaseURL: srv.URL, SessionToken: "t", HTTPClient: srv.Client()}
		_, err := fetcher.FetchCredentials(context.Background(), "clip.mp4")

		var uploadErr *domain.UploadError
		assert.ErrorAs(t, err, &uploadErr)
		assert.Equal(t, tc.kind, uploadErr.Kind, "status %d", tc.status)
		srv.Close()
	}
}
