package ocr

import (
	"image"

	"golang.org/x/image/draw"

	textflow "github.com/SethRobinson/UGTLive-sub001"
)

// UpscaleToMinimum scales the image up so that both dimensions reach the
// given minimums, preserving aspect ratio. Low-resolution captures recognize
// noticeably worse; a high-quality upscale before detection is cheap by
// comparison. Returns the (possibly unchanged) image and the scale factor
// applied, which callers pass to ScaleRecords to map detection coordinates
// back to the original image space.
func UpscaleToMinimum(img image.Image, minWidth, minHeight int) (image.Image, float64) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= 0 || height <= 0 || (width >= minWidth && height >= minHeight) {
		return img, 1.0
	}

	scale := float64(minWidth) / float64(width)
	if s := float64(minHeight) / float64(height); s > scale {
		scale = s
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst, scale
}

// GrayscaleStretch converts the image to grayscale and linearly stretches its
// contrast to the full [0,255] range. Detection on low-contrast screen
// captures improves markedly with this normalization. A flat image (single
// luminance value) is returned in grayscale without stretching.
func GrayscaleStretch(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)

	min, max := uint8(255), uint8(0)
	for _, v := range gray.Pix {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max <= min {
		return gray
	}

	span := float64(max - min)
	for i, v := range gray.Pix {
		gray.Pix[i] = uint8(float64(v-min) / span * 255)
	}
	return gray
}

// ScaleRecords divides every polygon coordinate by the given scale factor,
// converting detections on an upscaled image back to original coordinates.
// The input records are not modified.
func ScaleRecords(records []textflow.Record, scale float64) []textflow.Record {
	if scale == 1.0 || scale == 0 {
		return records
	}

	scaled := make([]textflow.Record, len(records))
	for i, r := range records {
		r.Rect = scaleCorners(r.Rect, scale)
		r.Vertices = scaleCorners(r.Vertices, scale)
		scaled[i] = r
	}
	return scaled
}

func scaleCorners(corners [][]float64, scale float64) [][]float64 {
	if len(corners) == 0 {
		return corners
	}

	out := make([][]float64, len(corners))
	for i, c := range corners {
		point := make([]float64, len(c))
		for j, v := range c {
			point[j] = v / scale
		}
		out[i] = point
	}
	return out
}
