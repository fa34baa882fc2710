package api

import (
	"context"
	"errors"
	"io"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
)

// UploadResult is the stored location of an uploaded object.
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Upload sends a file to object storage via the backend proxy. folder
// selects the destination prefix inside the bucket.
func (c *Client) Upload(ctx context.Context, folder, filename string, r io.Reader) (*UploadResult, error) {
	form := NewForm()
	form.AddField("fileName", filename)
	form.AddField("folder", folder)
	form.AddFile("file", filename, r)

	v, err := c.sendForm(ctx, "/api/oss/upload", nil, form)
	if err != nil {
		return nil, err
	}

	switch data := dataOf(v).(type) {
	case string:
		if data != "" {
			return &UploadResult{URL: data, Path: data}, nil
		}
	case map[string]any:
		res := &UploadResult{URL: str(data, "url"), Path: str(data, "path")}
		if res.URL == "" {
			res.URL = res.Path
		}
		if res.Path == "" {
			res.Path = res.URL
		}
		if res.URL != "" {
			return res, nil
		}
	}

	return nil, &apierr.TransportError{Op: "POST /api/oss/upload", Err: errors.New("upload response carries no location")}
}
