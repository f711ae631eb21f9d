package fclient

import "context"

// Caption endpoints. Each composites the source image together with the
// given text into a fixed template.

// Billboard puts the image and text on a roadside billboard.
func (c *Client) Billboard(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/billboard", imageURL, text)
}

// Caption adds a classic top caption above the image.
func (c *Client) Caption(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/caption", imageURL, text)
}

// Chalkboard writes the text on a chalkboard next to the image.
func (c *Client) Chalkboard(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/chalkboard", imageURL, text)
}

// Demotivational renders the black-framed demotivational poster.
func (c *Client) Demotivational(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/demotivational", imageURL, text)
}

// Gru renders the Gru presentation meme with the image and the plan text.
func (c *Client) Gru(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/gru", imageURL, text)
}

// Headline places the image under a newspaper headline.
func (c *Client) Headline(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/headline", imageURL, text)
}

// Lisa renders the Lisa Simpson presentation meme.
func (c *Client) Lisa(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/lisa", imageURL, text)
}

// Meme renders impact-font meme text over the image.
func (c *Client) Meme(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/meme", imageURL, text)
}

// Mistake renders the "I think I made a mistake" meme.
func (c *Client) Mistake(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/mistake", imageURL, text)
}

// Motivational renders a motivational poster with the text as its slogan.
func (c *Client) Motivational(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/motivational", imageURL, text)
}

// Photograph renders a polaroid photograph with a handwritten caption.
func (c *Client) Photograph(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/photograph", imageURL, text)
}

// Presentation shows the image on a conference slide with the text as title.
func (c *Client) Presentation(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/presentation", imageURL, text)
}

// ProductReview renders a five-star product review card.
func (c *Client) ProductReview(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/productreview", imageURL, text)
}

// Protest puts the image and text on a protest sign.
func (c *Client) Protest(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/protest", imageURL, text)
}

// Scroll writes the text on an ancient scroll held next to the image.
func (c *Client) Scroll(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/scroll", imageURL, text)
}

// Speech adds a speech bubble with the text above the image.
func (c *Client) Speech(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/speech", imageURL, text)
}

// Subtitle burns the text into the image as a movie subtitle.
func (c *Client) Subtitle(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/subtitle", imageURL, text)
}

// Testimonial renders a customer testimonial card.
func (c *Client) Testimonial(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/testimonial", imageURL, text)
}

// Ticket prints the image and text on an admission ticket.
func (c *Client) Ticket(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/ticket", imageURL, text)
}

// Tweet renders a tweet with the image as avatar and the text as content.
func (c *Client) Tweet(ctx context.Context, imageURL, text string) ([]byte, error) {
	return c.imageFromBoth(ctx, "/tweet", imageURL, text)
}
