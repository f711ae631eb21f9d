package fclient

import "context"

// Overlay and frame endpoints. Each composites the source image into a fixed
// template and returns the rendered image bytes.

// Ad places the image inside a banner advertisement.
func (c *Client) Ad(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/ad", imageURL)
}

// Affect renders the "this won't affect my baby" meme.
func (c *Client) Affect(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/affect", imageURL)
}

// Approved stamps the image with an APPROVED seal.
func (c *Client) Approved(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/approved", imageURL)
}

// Bandicam overlays the Bandicam trial watermark.
func (c *Client) Bandicam(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/bandicam", imageURL)
}

// Beautiful renders the "oh, this? this is beautiful" meme.
func (c *Client) Beautiful(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/beautiful", imageURL)
}

// Binoculars shows the image through a pair of binoculars.
func (c *Client) Binoculars(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/binoculars", imageURL)
}

// Bobross places the image on Bob Ross's easel.
func (c *Client) Bobross(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/bobross", imageURL)
}

// Bubble traps the image inside a soap bubble.
func (c *Client) Bubble(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/bubble", imageURL)
}

// Cctv renders the image as security camera footage.
func (c *Client) Cctv(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/cctv", imageURL)
}

// Console shows the image on a CRT monitor.
func (c *Client) Console(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/console", imageURL)
}

// Deviantart frames the image as a DeviantArt submission.
func (c *Client) Deviantart(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/deviantart", imageURL)
}

// Fakenews shows the image on a breaking news broadcast.
func (c *Client) Fakenews(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/fakenews", imageURL)
}

// Frame puts the image in an ornate gallery frame.
func (c *Client) Frame(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/frame", imageURL)
}

// Gallery hangs the image in a museum gallery.
func (c *Client) Gallery(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/gallery", imageURL)
}

// Hologram projects the image as a flickering hologram.
func (c *Client) Hologram(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/hologram", imageURL)
}

// Ifunny appends the iFunny watermark bar.
func (c *Client) Ifunny(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/ifunny", imageURL)
}

// Instagram wraps the image in an Instagram post.
func (c *Client) Instagram(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/instagram", imageURL)
}

// Jail bars the image behind a jail cell.
func (c *Client) Jail(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/jail", imageURL)
}

// Keyboard prints the image across keyboard keycaps.
func (c *Client) Keyboard(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/keyboard", imageURL)
}

// Linus shows Linus holding up the image.
func (c *Client) Linus(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/linus", imageURL)
}

// Magnify holds a magnifying glass over the image.
func (c *Client) Magnify(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/magnify", imageURL)
}

// Miranda renders the "you have the right to remain silent" card.
func (c *Client) Miranda(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/miranda", imageURL)
}

// Missing puts the image on a missing person poster.
func (c *Client) Missing(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/missing", imageURL)
}

// Mugshot renders the image as a police mugshot.
func (c *Client) Mugshot(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/mugshot", imageURL)
}

// NineGag appends the 9GAG watermark.
func (c *Client) NineGag(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/9gag", imageURL)
}

// Painting hangs the image as a classical painting.
func (c *Client) Painting(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/painting", imageURL)
}

// Plank shows the image on a protest plank.
func (c *Client) Plank(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/plank", imageURL)
}

// Polaroid renders the image as an instant photo.
func (c *Client) Polaroid(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/polaroid", imageURL)
}

// Poster pastes the image as a street poster.
func (c *Client) Poster(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/poster", imageURL)
}

// Projector casts the image onto a cinema screen.
func (c *Client) Projector(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/projector", imageURL)
}

// Puzzle cuts the image into jigsaw pieces with one missing.
func (c *Client) Puzzle(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/puzzle", imageURL)
}

// Radio shows the image on an old radio screen.
func (c *Client) Radio(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/radio", imageURL)
}

// Rejected stamps the image with a REJECTED seal.
func (c *Client) Rejected(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/rejected", imageURL)
}

// Rip puts the image on a gravestone.
func (c *Client) Rip(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/rip", imageURL)
}

// Snapchat wraps the image in a Snapchat story.
func (c *Client) Snapchat(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/snapchat", imageURL)
}

// Stamp prints the image on a postage stamp.
func (c *Client) Stamp(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/stamp", imageURL)
}

// Statue recarves the image as a marble statue.
func (c *Client) Statue(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/statue", imageURL)
}

// Stock covers the image in stock photo watermarks.
func (c *Client) Stock(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/stock", imageURL)
}

// Television shows the image on a living room TV.
func (c *Client) Television(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/television", imageURL)
}

// Trash renders the "this belongs in the trash" meme.
func (c *Client) Trash(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/trash", imageURL)
}

// Vending shows the image inside a vending machine.
func (c *Client) Vending(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/vending", imageURL)
}

// Vhs renders the image as a worn VHS recording.
func (c *Client) Vhs(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/vhs", imageURL)
}

// Wanted puts the image on a wanted poster.
func (c *Client) Wanted(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/wanted", imageURL)
}

// Wasted overlays the GTA wasted screen.
func (c *Client) Wasted(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/wasted", imageURL)
}

// Watermark stamps the fAPI watermark across the image.
func (c *Client) Watermark(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/watermark", imageURL)
}

// Window shows the image through a rainy window.
func (c *Client) Window(ctx context.Context, imageURL string) ([]byte, error) {
	return c.imageFromImage(ctx, "/window", imageURL)
}
