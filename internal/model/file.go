package model

import (
	"fmt"
	"strings"
)

// Byte size formatting thresholds
const (
	KiloByte = 1024
	MegaByte = 1024 * 1024
)

// Output file extension
const (
	OutputExtensionPNG = ".png"
)

// SourceFile represents the JPEG file currently selected for conversion.
// At most one SourceFile is held at a time; a new valid selection replaces it.
type SourceFile struct {
	Name     string // display name as supplied by the picker or drop, e.g. "photo.JPG"
	Size     int64  // byte size
	MIMEType string // declared media type, e.g. "image/jpeg"
	Data     []byte // raw file bytes
}

// OutputName returns the PNG filename for this source: the original basename
// with its extension stripped, plus ".png".
func (f *SourceFile) OutputName() string {
	name := f.Name
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name + OutputExtensionPNG
}

// SizeString returns the human-readable byte size for display.
func (f *SourceFile) SizeString() string {
	return FormatByteSize(f.Size)
}

// SameAs reports whether other refers to the same selection. Name plus byte
// size is the identity used for duplicate-selection suppression.
func (f *SourceFile) SameAs(other *SourceFile) bool {
	if f == nil || other == nil {
		return false
	}
	return f.Name == other.Name && f.Size == other.Size
}

// FormatByteSize formats a byte count for display: plain bytes below 1 KB,
// one decimal in KB below 1 MB, two decimals in MB above that.
func FormatByteSize(size int64) string {
	switch {
	case size < KiloByte:
		return fmt.Sprintf("%d B", size)
	case size < MegaByte:
		return fmt.Sprintf("%.1f KB", float64(size)/KiloByte)
	default:
		return fmt.Sprintf("%.2f MB", float64(size)/MegaByte)
	}
}
