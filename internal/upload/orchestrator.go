// Package upload coordinates the two-step video publish flow:
// the video file is uploaded first, then its thumbnail, and only
// after both succeed is the completion callback fired.
package upload

import (
	"context"
	"fmt"

	"short_video_service/internal/upload/domain"
	errprocess "short_video_service/pkg/err"
)

// Step 上傳流程目前的狀態
type Step string

const (
	// StepAwaitingVideo waiting for the video file
	StepAwaitingVideo Step = "awaiting_video"
	// StepAwaitingThumbnail video done, waiting for the thumbnail
	StepAwaitingThumbnail Step = "awaiting_thumbnail"
	// StepDone both files uploaded
	StepDone Step = "done"
)

// Uploader uploads a single file and returns its durable URL.
type Uploader interface {
	Upload(ctx context.Context, file domain.File, fileType domain.FileType, onProgress domain.ProgressFunc) (*domain.UploadResult, error)
}

// Result holds the URLs of a completed upload pair.
type Result struct {
	VideoURL     string
	ThumbnailURL string
}

// Orchestrator definition two-step upload state machine
type Orchestrator struct {
	uploader   Uploader
	step       Step
	result     Result
	onComplete func(Result)
}

// NewOrchestrator create an orchestrator waiting for the video file.
func NewOrchestrator(uploader Uploader, onComplete func(Result)) *Orchestrator {
	return &Orchestrator{
		uploader:   uploader,
		step:       StepAwaitingVideo,
		onComplete: onComplete,
	}
}

// Step returns the current step.
func (o *Orchestrator) Step() Step {
	return o.step
}

// Result returns the URLs collected so far.
func (o *Orchestrator) Result() Result {
	return o.result
}

// UploadNext uploads the file the flow is currently waiting for.
// A failed upload leaves the step unchanged so the caller can retry
// with another file. Calling after completion is an error.
func (o *Orchestrator) UploadNext(ctx context.Context, file domain.File, onProgress domain.ProgressFunc) error {
	switch o.step {
	case StepAwaitingVideo:
		res, err := o.uploader.Upload(ctx, file, domain.FileTypeVideo, onProgress)
		if err != nil {
			return err
		}
		o.result.VideoURL = res.URL
		o.step = StepAwaitingThumbnail
		return nil
	case StepAwaitingThumbnail:
		res, err := o.uploader.Upload(ctx, file, domain.FileTypeImage, onProgress)
		if err != nil {
			return err
		}
		o.result.ThumbnailURL = res.URL
		o.step = StepDone
		if o.onComplete != nil {
			o.onComplete(o.result)
		}
		return nil
	default:
		return errprocess.Set(fmt.Sprintf("upload flow already finished, step: %s", o.step))
	}
}
