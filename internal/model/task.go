package model

import (
	"fmt"
	"time"
)

// ConversionTask represents a single JPG to PNG conversion
type ConversionTask struct {
	ID           string
	SourceName   string // original filename, e.g. "photo.JPG"
	OutputName   string // derived PNG filename, e.g. "photo.png"
	OutputPath   string // path the PNG was saved to, empty until saved
	Status       TaskStatus
	LastError    string // last error message if any
	SourceSize   int64  // source file size in bytes
	OutputSize   int64  // encoded PNG size in bytes
	SourceWidth  int    // natural width of the decoded image
	SourceHeight int    // natural height of the decoded image
	TargetWidth  int    // planned output width
	TargetHeight int    // planned output height
	StartedAt    time.Time
	FinishedAt   time.Time
}

// DimensionsString returns "WxH -> WxH" for display, or "—" when the source
// was never decoded.
func (ct *ConversionTask) DimensionsString() string {
	if ct.SourceWidth <= 0 || ct.SourceHeight <= 0 {
		return "—"
	}
	if ct.TargetWidth == ct.SourceWidth && ct.TargetHeight == ct.SourceHeight {
		return fmt.Sprintf("%dx%d", ct.SourceWidth, ct.SourceHeight)
	}
	return fmt.Sprintf("%dx%d -> %dx%d", ct.SourceWidth, ct.SourceHeight, ct.TargetWidth, ct.TargetHeight)
}

// WasDownscaled reports whether the planned output is smaller than the source
func (ct *ConversionTask) WasDownscaled() bool {
	return ct.TargetWidth > 0 && (ct.TargetWidth < ct.SourceWidth || ct.TargetHeight < ct.SourceHeight)
}

// Elapsed returns the wall time the task has been running, or took to finish
func (ct *ConversionTask) Elapsed() time.Duration {
	if ct.StartedAt.IsZero() {
		return 0
	}
	if ct.FinishedAt.IsZero() {
		return time.Since(ct.StartedAt)
	}
	return ct.FinishedAt.Sub(ct.StartedAt)
}
