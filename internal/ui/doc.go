package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires file selection and drag-and-drop to the validation, preview and
// conversion services, and owns the interaction state machine that gates the
// controls. All UI strings are localized via Localization.
