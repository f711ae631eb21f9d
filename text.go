package fclient

import "context"

// Text generator endpoints. Each renders the given text into a fixed
// template and returns the image bytes.

// Achievement renders a Minecraft achievement toast.
func (c *Client) Achievement(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/achievement", text)
}

// Alert renders an iOS alert dialog.
func (c *Client) Alert(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/alert", text)
}

// Announcement renders a public announcement banner.
func (c *Client) Announcement(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/announcement", text)
}

// Calligraphy writes the text in ornate calligraphy.
func (c *Client) Calligraphy(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/calligraphy", text)
}

// Changemymind renders the "change my mind" table sign.
func (c *Client) Changemymind(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/changemymind", text)
}

// Clippy shows Clippy offering the text as advice.
func (c *Client) Clippy(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/clippy", text)
}

// Clyde renders a Discord Clyde system message.
func (c *Client) Clyde(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/clyde", text)
}

// ErrorDialog renders the text as a Windows error dialog.
func (c *Client) ErrorDialog(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/error", text)
}

// Excuse renders the "my excuse" chalkboard meme.
func (c *Client) Excuse(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/excuse", text)
}

// Fact renders the "it's a fact" book meme.
func (c *Client) Fact(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/fact", text)
}

// Fortune prints the text on a fortune cookie slip.
func (c *Client) Fortune(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/fortune", text)
}

// Graffiti sprays the text on a brick wall.
func (c *Client) Graffiti(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/graffiti", text)
}

// Humansgood renders the "humans are so good" meme.
func (c *Client) Humansgood(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/humansgood", text)
}

// Letter types the text as an old-fashioned letter.
func (c *Client) Letter(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/letter", text)
}

// License prints the text on a vanity license plate.
func (c *Client) License(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/license", text)
}

// Neonsign renders the text as a glowing neon sign.
func (c *Client) Neonsign(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/neonsign", text)
}

// Nokia shows the text on a Nokia brick display.
func (c *Client) Nokia(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/nokia", text)
}

// Quote typesets the text as an attributed quotation card.
func (c *Client) Quote(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/quote", text)
}

// Ransom cuts the text out of magazine letters.
func (c *Client) Ransom(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/ransom", text)
}

// Receipt prints the text on a shopping receipt.
func (c *Client) Receipt(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/receipt", text)
}

// Retromeme renders the text in the 80s retrowave style.
func (c *Client) Retromeme(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/retromeme", text)
}

// Sign writes the text on a held-up cardboard sign.
func (c *Client) Sign(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/sign", text)
}

// Sticky writes the text on a sticky note.
func (c *Client) Sticky(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/sticky", text)
}

// Supreme renders the text as the Supreme box logo.
func (c *Client) Supreme(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/supreme", text)
}

// Terminal types the text into a green-on-black terminal.
func (c *Client) Terminal(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/terminal", text)
}

// Thinking surrounds the text with thinking emoji.
func (c *Client) Thinking(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/thinking", text)
}

// Typewriter types the text on a typewriter page.
func (c *Client) Typewriter(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/typewriter", text)
}

// Warning renders the text as a road warning sign.
func (c *Client) Warning(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/warning", text)
}

// Wheeze renders the wheeze laughing meme with the text as punchline.
func (c *Client) Wheeze(ctx context.Context, text string) ([]byte, error) {
	return c.imageFromText(ctx, "/wheeze", text)
}
