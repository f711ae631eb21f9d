package fclient

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// Execution cost headers returned by the script endpoint.
const (
	headerWallTime = "x-wall-time"
	headerCPUTime  = "x-cpu-time"
	headerMemory   = "x-memory-usage"
)

type scriptBody struct {
	Script    string         `json:"script"`
	Variables map[string]any `json:"variables,omitempty"`
}

// RunScript executes an image script on the service with the given variables
// injected and returns the rendered result. The variables are opaque JSON
// values; their shape is defined by the script itself.
//
// Animated scripts come back as GIF; everything else is PNG. The service
// reports the format through the response content type, which is the one
// place this client branches on response content rather than the declared
// return kind.
func (c *Client) RunScript(ctx context.Context, script string, variables map[string]any) (*ScriptResult, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   "/script",
		Body:   scriptBody{Script: script, Variables: variables},
		Return: ReturnBuffer,
	})
	if err != nil {
		return nil, err
	}

	format := FormatPNG
	if strings.Contains(resp.Headers.Get("Content-Type"), "image/gif") {
		format = FormatGIF
	}

	return &ScriptResult{
		Image:    resp.Body,
		Format:   format,
		WallTime: intHeader(resp, headerWallTime),
		CPUTime:  intHeader(resp, headerCPUTime),
		Memory:   intHeader(resp, headerMemory),
	}, nil
}

func intHeader(resp *Response, key string) int {
	v, err := strconv.Atoi(resp.Headers.Get(key))
	if err != nil {
		return 0
	}
	return v
}
