package fclient

import (
	"context"
	"net/http"
)

// endpointArgs is the text argument object shared by caption and text
// generator endpoints.
type endpointArgs struct {
	Text string `json:"text"`
}

// endpointBody is the request body shape shared by all image endpoints. The
// service ignores fields it does not use, so the three shapes collapse into
// one struct with omitted zero values.
type endpointBody struct {
	Images []string      `json:"images,omitempty"`
	Args   *endpointArgs `json:"args,omitempty"`
}

// imageFromImage posts {images: [url]} and returns the rendered image bytes.
func (c *Client) imageFromImage(ctx context.Context, path, imageURL string) ([]byte, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   endpointBody{Images: []string{imageURL}},
		Return: ReturnBuffer,
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// imageFromText posts {args: {text}} and returns the rendered image bytes.
func (c *Client) imageFromText(ctx context.Context, path, text string) ([]byte, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   endpointBody{Args: &endpointArgs{Text: text}},
		Return: ReturnBuffer,
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// imageFromBoth posts {images: [url], args: {text}} and returns the rendered
// image bytes.
func (c *Client) imageFromBoth(ctx context.Context, path, imageURL, text string) ([]byte, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body: endpointBody{
			Images: []string{imageURL},
			Args:   &endpointArgs{Text: text},
		},
		Return: ReturnBuffer,
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
