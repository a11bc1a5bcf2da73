package main

import (
	"github.com/schollz/progressbar/v3"

	"github.com/thobiast/s3-client/s3types"
)

// progressBarTracker renders transfer progress as a visual bar.
// The bar is created lazily on the first update because the total byte
// count is only known once the transfer starts.
type progressBarTracker struct {
	description string
	bar         *progressbar.ProgressBar
}

var _ s3types.ProgressTracker = (*progressBarTracker)(nil)

func newProgressBarTracker(description string) *progressBarTracker {
	return &progressBarTracker{description: description}
}

func (p *progressBarTracker) Update(bytesTransferred, totalBytes int64) {
	if p.bar == nil {
		barMax := totalBytes
		if barMax <= 0 {
			// Unknown total renders as a spinner
			barMax = -1
		}
		p.bar = progressbar.DefaultBytes(barMax, p.description)
	}
	if totalBytes > 0 && p.bar.GetMax64() != totalBytes {
		p.bar.ChangeMax64(totalBytes)
	}
	_ = p.bar.Set64(bytesTransferred)
}

func (p *progressBarTracker) Complete() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

func (p *progressBarTracker) Error(err error) {
	if p.bar != nil {
		_ = p.bar.Exit()
	}
}
