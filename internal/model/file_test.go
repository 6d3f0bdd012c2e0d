package model

import "testing"

func TestOutputName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"photo.jpg", "photo.png"},
		{"photo.JPG", "photo.png"},
		{"archive.backup.jpeg", "archive.backup.png"},
		{"noextension", "noextension.png"},
		{".hidden", ".hidden.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &SourceFile{Name: tt.name}
			if got := f.OutputName(); got != tt.expected {
				t.Errorf("OutputName() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestFormatByteSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{500000, "488.3 KB"},
		{1048576, "1.00 MB"},
		{5 * 1048576, "5.00 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatByteSize(tt.size); got != tt.expected {
				t.Errorf("FormatByteSize(%d) = %q, expected %q", tt.size, got, tt.expected)
			}
		})
	}
}

func TestSameAs(t *testing.T) {
	base := &SourceFile{Name: "photo.jpg", Size: 1000}

	tests := []struct {
		name     string
		other    *SourceFile
		expected bool
	}{
		{"identical", &SourceFile{Name: "photo.jpg", Size: 1000}, true},
		{"different name", &SourceFile{Name: "other.jpg", Size: 1000}, false},
		{"different size", &SourceFile{Name: "photo.jpg", Size: 1001}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.SameAs(tt.other); got != tt.expected {
				t.Errorf("SameAs() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSameAs_NilReceiver(t *testing.T) {
	var f *SourceFile
	if f.SameAs(&SourceFile{Name: "photo.jpg"}) {
		t.Error("nil receiver should never match")
	}
}
