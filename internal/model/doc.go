package model

// Package model defines domain data structures used across the app: the
// selected source file, conversion tasks, and status enums. Structures are
// designed for direct use in the UI and explicit state transitions.
