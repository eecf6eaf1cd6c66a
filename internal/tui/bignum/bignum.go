// Package bignum renders numbers as large block art using half-block characters.
package bignum

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var loadedFace font.Face

func init() {
	// Try to load a font from common system locations; digits render fine
	// from any Latin font.
	fontPaths := []string{
		// macOS
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
		"/Library/Fonts/Arial Unicode.ttf",
		// Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		// Windows
		"C:\\Windows\\Fonts\\arial.ttf",
		"C:\\Windows\\Fonts\\segoeui.ttf",
	}

	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		// Try parsing as font collection first
		if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
			if fnt, err := coll.Font(0); err == nil {
				if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
					Size: 64,
					DPI:  72,
				}); err == nil {
					loadedFace = face
					return
				}
			}
		}

		// Try parsing as single font
		if fnt, err := opentype.Parse(data); err == nil {
			if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
				Size: 64,
				DPI:  72,
			}); err == nil {
				loadedFace = face
				return
			}
		}
	}
}

// Available reports whether a usable font face was found.
func Available() bool {
	return loadedFace != nil
}

// RenderBlock renders a string (digits, typically a total) using
// half-block characters (▀▄█). rows defines the output height in terminal
// cells; the width follows the glyph proportions, capped at maxCols.
// Returns "" when no font is available or the string is empty.
func RenderBlock(s string, rows, maxCols int) string {
	if s == "" || loadedFace == nil || rows <= 0 {
		return ""
	}

	// Measure the whole string at the font's natural size.
	advance := font.MeasureString(loadedFace, s).Ceil()
	metrics := loadedFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	padding := 4
	srcWidth := advance + padding*2
	srcHeight := ascent + descent + padding*2
	if srcWidth < 64 {
		srcWidth = 64
	}
	if srcHeight < 64 {
		srcHeight = 64
	}

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: loadedFace,
		Dot:  fixed.P(padding, padding+ascent),
	}
	d.DrawString(s)

	// Half-blocks give two vertical pixels per cell; terminal cells are
	// roughly twice as tall as wide, so halve the horizontal ratio.
	targetHeight := rows * 2
	cols := srcWidth * targetHeight / (srcHeight * 2)
	if cols < 1 {
		cols = 1
	}
	if maxCols > 0 && cols > maxCols {
		cols = maxCols
	}

	scaledImg := scaleDown(srcImg, cols, targetHeight)
	return imageToHalfBlocks(scaledImg, cols, rows)
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Max.X
	srcHeight := srcBounds.Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			// Calculate source region
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := int(float64(dx+1) * xRatio)
			sy2 := int(float64(dy+1) * yRatio)

			if sx2 > srcWidth {
				sx2 = srcWidth
			}
			if sy2 > srcHeight {
				sy2 = srcHeight
			}

			// Average the pixels in the source region
			var sum int
			count := 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			// Each character cell represents 2 vertical pixels
			topY := row * 2
			bottomY := row*2 + 1

			topBright := getPixelBrightness(img, col, topY)
			bottomBright := getPixelBrightness(img, col, bottomY)

			// Threshold for "on"
			threshold := uint8(40)

			topOn := topBright > threshold
			bottomOn := bottomBright > threshold

			if topOn && bottomOn {
				result.WriteRune('█')
			} else if topOn {
				result.WriteRune('▀')
			} else if bottomOn {
				result.WriteRune('▄')
			} else {
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

// getPixelBrightness returns the brightness at a pixel, 0 if out of bounds
func getPixelBrightness(img *image.Gray, x, y int) uint8 {
	bounds := img.Bounds()
	if x < 0 || y < 0 || x >= bounds.Max.X || y >= bounds.Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
