package convert

// MaxDimension is the largest width or height the output raster may have.
// Larger sources are downscaled to fit; smaller ones are never upscaled.
const MaxDimension = 4096

// PlanDimensions computes the output dimensions for a source of the given
// natural size. When both axes already fit within maxDim the input is
// returned unchanged. Otherwise the smaller of the two axis ratios is applied
// to both axes and floored, clamped to at least 1 pixel, so the aspect ratio
// survives up to integer rounding. Integer arithmetic keeps the floor exact:
// the longer axis lands on maxDim itself and the shorter one is
// axis*maxDim/longer, which is floor(axis*scale) without float drift.
func PlanDimensions(naturalWidth, naturalHeight, maxDim int) (int, int) {
	if naturalWidth <= maxDim && naturalHeight <= maxDim {
		return naturalWidth, naturalHeight
	}

	var width, height int
	if naturalWidth >= naturalHeight {
		width = maxDim
		height = naturalHeight * maxDim / naturalWidth
	} else {
		height = maxDim
		width = naturalWidth * maxDim / naturalHeight
	}

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return width, height
}
