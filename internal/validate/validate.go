// Package validate gates candidate files before they become the current
// selection. Both the filename extension and the declared media type must
// match for a file to be accepted.
package validate

import (
	"strings"

	"github.com/pngify/pngify/internal/model"
)

// Accepted input constraints
const (
	AcceptedMIMEType = "image/jpeg"
)

// Rejection messages shown to the user
const (
	MsgNoFile      = "No file"
	MsgInvalidFile = "Invalid file. Please upload a JPG or JPEG image."
)

// AcceptedExtensions lists the filename extensions treated as JPEG input
var AcceptedExtensions = []string{"jpg", "jpeg"}

// Result is the outcome of validating a candidate file
type Result struct {
	OK     bool
	Reason string // human-readable rejection reason, empty when OK
}

// File checks a candidate file against the JPEG allow-list. A nil candidate
// is rejected with "No file". The extension and media-type checks are
// independent and both must pass.
func File(f *model.SourceFile) Result {
	if f == nil {
		return Result{Reason: MsgNoFile}
	}
	if !hasAcceptedExtension(f.Name) || f.MIMEType != AcceptedMIMEType {
		return Result{Reason: MsgInvalidFile}
	}
	return Result{OK: true}
}

// hasAcceptedExtension checks the substring after the final dot,
// case-insensitively, against AcceptedExtensions.
func hasAcceptedExtension(name string) bool {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return false
	}
	ext := strings.ToLower(name[idx+1:])
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}
