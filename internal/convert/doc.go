package convert

// Package convert implements the JPG to PNG conversion pipeline: timeout-guarded
// JPEG decoding, downscale planning against the maximum raster dimension, and
// rasterization to an offscreen surface encoded as PNG. It manages task
// lifecycle and progress propagation to the UI.
