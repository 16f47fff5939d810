// uploader 對應網頁上傳頁的流程：先傳影片、再傳縮圖，
// 兩者都成功後把中繼資料送到 /api/video。
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"short_video_service/internal/upload"
	"short_video_service/internal/upload/client"
	"short_video_service/internal/upload/domain"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "service base URL")
	sessionToken := flag.String("token", "", "session token from /api/auth/login")
	videoPath := flag.String("video", "", "path to the video file")
	thumbnailPath := flag.String("thumbnail", "", "path to the thumbnail image")
	title := flag.String("title", "", "video title")
	description := flag.String("description", "", "video description")
	flag.Parse()

	if *sessionToken == "" || *videoPath == "" || *thumbnailPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	fetcher := &client.HTTPCredentialFetcher{
		BaseURL:      *baseURL,
		SessionToken: *sessionToken,
	}
	uploader := client.NewClient(fetcher, http.DefaultClient)

	ctx := context.Background()
	var final upload.Result
	o := upload.NewOrchestrator(uploader, func(r upload.Result) {
		final = r
	})

	err := uploadFiles(ctx, o, []string{*videoPath, *thumbnailPath}, func(pct int) {
		fmt.Printf("\r%3d%%", pct)
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("video:     %s\nthumbnail: %s\n", final.VideoURL, final.ThumbnailURL)

	if err := createVideo(*baseURL, *sessionToken, *title, *description, final); err != nil {
		log.Fatalf("create video: %v", err)
	}
	fmt.Println("video created")
}

// 測試時可替換
var openUpload = openFile

// uploadFiles 依序上傳，每個檔案上傳完就關閉
func uploadFiles(ctx context.Context, o *upload.Orchestrator, paths []string, onProgress domain.ProgressFunc) error {
	for _, p := range paths {
		file, closer, err := openUpload(p)
		if err != nil {
			return fmt.Errorf("open %s: %w", p, err)
		}
		fmt.Printf("uploading %s\n", file.Name)
		err = o.UploadNext(ctx, file, onProgress)
		closer.Close()
		fmt.Println()
		if err != nil {
			return fmt.Errorf("upload %s: %w", p, err)
		}
	}
	return nil
}

func openFile(path string) (domain.File, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.File{}, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return domain.File{}, nil, err
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return domain.File{
		Name:        filepath.Base(path),
		Size:        info.Size(),
		ContentType: contentType,
		Content:     f,
	}, f, nil
}

func createVideo(baseURL, sessionToken, title, description string, result upload.Result) error {
	payload, err := json.Marshal(map[string]any{
		"title":        title,
		"description":  description,
		"videoUrl":     result.VideoURL,
		"thumbnailUrl": result.ThumbnailURL,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/video?auth=%s", baseURL, sessionToken)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return nil
}
