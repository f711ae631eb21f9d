package fclient

import "context"

// Pixel-effect endpoints. Each takes a source image URL and returns the
// transformed image bytes.

// Blur applies a gaussian blur.
func (c *Client) Blur(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/blur", imageURL)
}

// Blurple recolors the image into the blurple palette.
func (c *Client) Blurple(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/blurple", imageURL)
}

// Charcoal renders the image as a charcoal sketch.
func (c *Client) Charcoal(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/charcoal", imageURL)
}

// Circle crops the image into a circle.
func (c *Client) Circle(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/circle", imageURL)
}

// Deepfry heavily compresses and saturates the image.
func (c *Client) Deepfry(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/deepfry", imageURL)
}

// Dilate applies a morphological dilation.
func (c *Client) Dilate(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/dilate", imageURL)
}

// Edges keeps only the detected edges.
func (c *Client) Edges(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/edges", imageURL)
}

// Emboss applies an emboss filter.
func (c *Client) Emboss(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/emboss", imageURL)
}

// Erode applies a morphological erosion.
func (c *Client) Erode(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/erode", imageURL)
}

// Explode distorts the image outward from its center.
func (c *Client) Explode(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/explode", imageURL)
}

// Fisheye applies a fisheye lens distortion.
func (c *Client) Fisheye(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/fisheye", imageURL)
}

// Flip mirrors the image vertically.
func (c *Client) Flip(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/flip", imageURL)
}

// Flop mirrors the image horizontally.
func (c *Client) Flop(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/flop", imageURL)
}

// Frost overlays a frosted glass texture.
func (c *Client) Frost(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/frost", imageURL)
}

// Glitch applies corrupted-scanline glitch artifacts.
func (c *Client) Glitch(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/glitch", imageURL)
}

// Globe wraps the image around a rotating sphere.
func (c *Client) Globe(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/globe", imageURL)
}

// Glow adds a soft bloom around bright regions.
func (c *Client) Glow(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/glow", imageURL)
}

// Grayscale removes all color.
func (c *Client) Grayscale(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/grayscale", imageURL)
}

// Implode distorts the image inward toward its center.
func (c *Client) Implode(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/implode", imageURL)
}

// Invert inverts every channel.
func (c *Client) Invert(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/invert", imageURL)
}

// Jpeg recompresses the image at the lowest JPEG quality.
func (c *Client) Jpeg(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/jpeg", imageURL)
}

// Kaleidoscope mirrors the image into kaleidoscope segments.
func (c *Client) Kaleidoscope(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/kaleidoscope", imageURL)
}

// Magik applies seam-carving content-aware distortion.
func (c *Client) Magik(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/magik", imageURL)
}

// Melt drips the image downward.
func (c *Client) Melt(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/melt", imageURL)
}

// Mirror reflects the left half onto the right.
func (c *Client) Mirror(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/mirror", imageURL)
}

// Mosaic rebuilds the image from small tiles of itself.
func (c *Client) Mosaic(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/mosaic", imageURL)
}

// Neon traces edges with glowing neon lines.
func (c *Client) Neon(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/neon", imageURL)
}

// Oil repaints the image as an oil painting.
func (c *Client) Oil(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/oil", imageURL)
}

// Paint repaints the image with broad brush strokes.
func (c *Client) Paint(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/paint", imageURL)
}

// Pixelate reduces the image to large visible pixels.
func (c *Client) Pixelate(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/pixelate", imageURL)
}

// Posterize reduces the image to a few tonal levels.
func (c *Client) Posterize(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/posterize", imageURL)
}

// Rainbow overlays an animated rainbow gradient.
func (c *Client) Rainbow(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/rainbow", imageURL)
}

// Retro applies a faded retro color grade.
func (c *Client) Retro(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/retro", imageURL)
}

// Ripple distorts the image with concentric ripples.
func (c *Client) Ripple(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/ripple", imageURL)
}

// Sepia applies a sepia tone.
func (c *Client) Sepia(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/sepia", imageURL)
}

// Sharpen increases local contrast.
func (c *Client) Sharpen(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/sharpen", imageURL)
}

// Shatter breaks the image into scattered shards.
func (c *Client) Shatter(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/shatter", imageURL)
}

// Sketch redraws the image as a pencil sketch.
func (c *Client) Sketch(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/sketch", imageURL)
}

// Snow overlays falling snow.
func (c *Client) Snow(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/snow", imageURL)
}

// Solarize inverts tones above a brightness threshold.
func (c *Client) Solarize(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/solarize", imageURL)
}

// Spin rotates the image as an animation.
func (c *Client) Spin(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/spin", imageURL)
}

// Static overlays analog TV static.
func (c *Client) Static(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/static", imageURL)
}

// Swirl twists the image around its center.
func (c *Client) Swirl(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/swirl", imageURL)
}

// Toon redraws the image with cartoon shading.
func (c *Client) Toon(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/toon", imageURL)
}

// Vaporwave applies a vaporwave color grade.
func (c *Client) Vaporwave(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/vaporwave", imageURL)
}

// Wave distorts the image with a horizontal sine wave.
func (c *Client) Wave(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/wave", imageURL)
}

// Wide stretches the image to double width.
func (c *Client) Wide(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/wide", imageURL)
}

// Zoom zooms into the center of the image as an animation.
func (c *Client) Zoom(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/zoom", imageURL)
}
