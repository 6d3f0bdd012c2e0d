package ui

import (
	"fmt"

	"github.com/pngify/pngify/internal/model"
	"github.com/pngify/pngify/internal/validate"
)

// UIState represents the interaction state of the main window
type UIState string

const (
	// StateEmpty means no selection is held; convert is disabled
	StateEmpty UIState = "Empty"

	// StateReady means a valid selection is held; convert is enabled
	StateReady UIState = "Ready"

	// StateLoading means a conversion is in flight; convert and reset are disabled
	StateLoading UIState = "Loading"

	// StateError means an error is displayed; a held selection is preserved
	// so the user may retry
	StateError UIState = "Error"
)

// String returns the string representation of UIState
func (s UIState) String() string {
	return string(s)
}

// SelectOutcome describes what a selection attempt did to the session
type SelectOutcome int

const (
	// SelectAccepted means the candidate became the current selection
	SelectAccepted SelectOutcome = iota

	// SelectDuplicate means the candidate matched the current selection and
	// was suppressed
	SelectDuplicate

	// SelectRejected means validation failed; any held selection survives
	SelectRejected

	// SelectIgnored means a conversion is in flight and the input was dropped
	SelectIgnored
)

// Session owns the interaction state machine: the current selection, the
// displayed error or notice, and the transitions between Empty, Ready,
// Loading and Error. All mutations happen on the UI goroutine; the async
// pipeline only reaches the session through its terminal callback.
type Session struct {
	state    UIState
	file     *model.SourceFile
	errorMsg string
	notice   string
}

// NewSession creates a session in the Empty state
func NewSession() *Session {
	return &Session{state: StateEmpty}
}

// State returns the current interaction state
func (s *Session) State() UIState {
	return s.state
}

// File returns the current selection, or nil
func (s *Session) File() *model.SourceFile {
	return s.file
}

// ErrorMessage returns the displayed error, empty when none
func (s *Session) ErrorMessage() string {
	return s.errorMsg
}

// Notice returns the displayed success message, empty when none
func (s *Session) Notice() string {
	return s.notice
}

// CanConvert reports whether a conversion may be started
func (s *Session) CanConvert() bool {
	return s.file != nil && s.state != StateLoading
}

// CanReset reports whether the reset control is available
func (s *Session) CanReset() bool {
	return s.state != StateLoading
}

// Select runs a candidate file through validation and applies the outcome.
// A rejected candidate sets the error message but never discards a held
// valid selection. Reselecting the current file (same name and size) is
// suppressed as a no-op.
func (s *Session) Select(candidate *model.SourceFile) SelectOutcome {
	if s.state == StateLoading {
		return SelectIgnored
	}

	result := validate.File(candidate)
	if !result.OK {
		s.errorMsg = result.Reason
		s.notice = ""
		s.state = StateError
		return SelectRejected
	}

	if s.state == StateReady && s.file.SameAs(candidate) {
		return SelectDuplicate
	}

	s.file = candidate
	s.errorMsg = ""
	s.notice = ""
	s.state = StateReady
	return SelectAccepted
}

// BeginConversion moves the session into Loading and clears any prior error
func (s *Session) BeginConversion() error {
	if s.file == nil {
		return fmt.Errorf("no file selected")
	}
	if s.state == StateLoading {
		return fmt.Errorf("conversion already in progress")
	}

	s.state = StateLoading
	s.errorMsg = ""
	s.notice = ""
	return nil
}

// FinishSuccess resets the session to Empty with a success notice
func (s *Session) FinishSuccess(notice string) {
	s.file = nil
	s.errorMsg = ""
	s.notice = notice
	s.state = StateEmpty
}

// FinishFailure returns the session to an error-annotated retryable state.
// The selection is preserved so the user can retry without reselecting.
func (s *Session) FinishFailure(message string) {
	s.errorMsg = message
	s.notice = ""
	s.state = StateError
}

// ReturnToReady ends a conversion without an outcome, keeping the selection.
// Used when the user cancels the save dialog after a successful encode.
func (s *Session) ReturnToReady() {
	s.errorMsg = ""
	s.notice = ""
	if s.file != nil {
		s.state = StateReady
	} else {
		s.state = StateEmpty
	}
}

// Reset returns the session to Empty, dropping the selection and any
// messages. Safe to call repeatedly.
func (s *Session) Reset() {
	s.file = nil
	s.errorMsg = ""
	s.notice = ""
	s.state = StateEmpty
}
