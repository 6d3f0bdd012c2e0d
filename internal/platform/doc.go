package platform

// Package platform contains host filesystem and desktop integration helpers:
// writing converted output, picking collision-free output paths, and
// revealing or opening saved files in the system file manager.
