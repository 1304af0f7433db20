package raster

import "image"

// NormalizeOrientation flips the image in place so that its top-left pixel
// corresponds to the grid's north-west corner: a vertical flip when rows were
// scanned south to north, then a horizontal flip when columns were scanned
// east to west. Each flip is its own inverse, so applying the same flags
// twice restores the original image.
func NormalizeOrientation(img *image.RGBA, flags ScanFlags) {
	if flags.JScansPositively {
		FlipVertical(img)
	}
	if flags.IScansNegatively {
		FlipHorizontal(img)
	}
}

// FlipVertical mirrors the image top to bottom in place.
func FlipVertical(img *image.RGBA) {
	height := img.Bounds().Dy()
	tmp := make([]uint8, img.Stride)

	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		topRow := img.Pix[top*img.Stride : (top+1)*img.Stride]
		bottomRow := img.Pix[bottom*img.Stride : (bottom+1)*img.Stride]
		copy(tmp, topRow)
		copy(topRow, bottomRow)
		copy(bottomRow, tmp)
	}
}

// FlipHorizontal mirrors the image left to right in place.
func FlipHorizontal(img *image.RGBA) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	for y := 0; y < height; y++ {
		rowOffset := y * img.Stride
		for left, right := 0, width-1; left < right; left, right = left+1, right-1 {
			li, ri := rowOffset+left*4, rowOffset+right*4
			for k := 0; k < 4; k++ {
				img.Pix[li+k], img.Pix[ri+k] = img.Pix[ri+k], img.Pix[li+k]
			}
		}
	}
}
