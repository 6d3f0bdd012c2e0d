// Package preview owns the transient display resource for the currently
// selected file. At most one preview resource is live at a time: showing a
// new file releases the previous resource, and Clear is safe to call when
// nothing is showing.
package preview

import (
	"fyne.io/fyne/v2"

	"github.com/pngify/pngify/internal/model"
)

// Preview holds the displayable reference and metadata for the current selection
type Preview struct {
	Resource fyne.Resource // image resource backed by the selected file's bytes
	Name     string        // display filename
	SizeText string        // human-readable byte size
}

// Manager tracks the single live preview and notifies the UI when it changes
type Manager struct {
	current  *Preview
	onChange func(*Preview) // receives nil when the preview is cleared
}

// NewManager creates a new preview manager
func NewManager() *Manager {
	return &Manager{}
}

// SetChangeCallback sets the callback invoked after Show and Clear
func (m *Manager) SetChangeCallback(callback func(*Preview)) {
	m.onChange = callback
}

// Show replaces any existing preview with one for the given file and records
// its display metadata.
func (m *Manager) Show(file *model.SourceFile) *Preview {
	m.release()

	m.current = &Preview{
		Resource: fyne.NewStaticResource(file.Name, file.Data),
		Name:     file.Name,
		SizeText: file.SizeString(),
	}

	m.notify()
	return m.current
}

// Clear releases the current preview if present. Idempotent; a second call
// is a no-op.
func (m *Manager) Clear() {
	if m.current == nil {
		return
	}
	m.release()
	m.notify()
}

// Current returns the live preview, or nil when nothing is showing
func (m *Manager) Current() *Preview {
	return m.current
}

// release drops the reference to the preview resource so the backing bytes
// can be collected
func (m *Manager) release() {
	if m.current != nil {
		m.current.Resource = nil
		m.current = nil
	}
}

// notify calls the change callback if set
func (m *Manager) notify() {
	if m.onChange != nil {
		m.onChange(m.current)
	}
}
