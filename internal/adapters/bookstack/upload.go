package bookstack

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cenkalti/backoff/v4"
)

// UploadImage pushes an image into the BookStack gallery associated with
// a page and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, path string, pageID int) (string, error) {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")

	body, contentType, err := buildMultipart(path, "image", "image/"+ext, map[string]string{
		"name":        stem,
		"type":        "gallery",
		"uploaded_to": strconv.Itoa(pageID),
	})
	if err != nil {
		return "", err
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.doMultipart(ctx, "/image-gallery", body, contentType, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("no url returned for %s", name)
	}
	return out.URL, nil
}

// UploadAttachment pushes a generic file as a page attachment and
// returns the attachment id.
func (c *Client) UploadAttachment(ctx context.Context, path string, pageID int) (int, error) {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	body, contentType, err := buildMultipart(path, "file", "application/octet-stream", map[string]string{
		"name":        stem,
		"uploaded_to": strconv.Itoa(pageID),
	})
	if err != nil {
		return 0, err
	}

	var out entityResponse
	if err := c.doMultipart(ctx, "/attachments", body, contentType, &out); err != nil {
		return 0, err
	}
	if out.ID == 0 {
		return 0, fmt.Errorf("no id returned for %s", name)
	}
	return out.ID, nil
}

// buildMultipart assembles the upload form once; the request body is
// replayed from the buffer on each retry attempt.
func buildMultipart(path, fileField, fileContentType string, fields map[string]string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("file not found: %s", path)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filepath.Base(path)))
	header.Set("Content-Type", fileContentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func (c *Client) doMultipart(ctx context.Context, path string, body []byte, contentType string, out any) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", c.auth)
		req.Header.Set("Content-Type", contentType)

		c.log.Debug("upload", "path", path, "bytes", len(body))
		return c.handle(req, out)
	}
	return c.retry(ctx, op)
}
