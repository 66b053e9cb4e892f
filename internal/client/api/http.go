package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/common"
)

// HTTPAdapter implements Adapter over net/http.
type HTTPAdapter struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAdapter(baseURL string) *HTTPAdapter {
	return &HTTPAdapter{baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{}}
}

func (a *HTTPAdapter) Get(ctx context.Context, u string, opts *RequestOptions, out any) error {
	return a.doJSON(ctx, http.MethodGet, u, nil, opts, out)
}

func (a *HTTPAdapter) Post(ctx context.Context, u string, body any, opts *RequestOptions, out any) error {
	return a.doJSON(ctx, http.MethodPost, u, body, opts, out)
}

func (a *HTTPAdapter) Put(ctx context.Context, u string, body any, opts *RequestOptions, out any) error {
	return a.doJSON(ctx, http.MethodPut, u, body, opts, out)
}

func (a *HTTPAdapter) Delete(ctx context.Context, u string, opts *RequestOptions, out any) error {
	return a.doJSON(ctx, http.MethodDelete, u, nil, opts, out)
}

// Upload POSTs file as a multipart form. The file part carries the file's
// media type so the server can validate it without sniffing.
func (a *HTTPAdapter) Upload(ctx context.Context, u string, file *models.LiveFile, opts *UploadOptions, out any) error {
	if file == nil {
		return common.ErrNoLiveFile
	}

	fieldName := "file"
	var extra, headers map[string]string
	if opts != nil {
		if opts.FieldName != "" {
			fieldName = opts.FieldName
		}
		extra = opts.AdditionalData
		headers = opts.Headers
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, file.Name))
	h.Set("Content-Type", file.MediaType)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return fmt.Errorf("write multipart payload: %w", err)
	}
	for k, v := range extra {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write multipart field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.buildURL(u, nil), &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return a.send(req, out)
}

func (a *HTTPAdapter) doJSON(ctx context.Context, method, u string, body any, opts *RequestOptions, out any) error {
	var params, headers map[string]string
	if opts != nil {
		params = opts.Params
		headers = opts.Headers
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.buildURL(u, params), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return a.send(req, out)
}

func (a *HTTPAdapter) send(req *http.Request, out any) error {
	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (a *HTTPAdapter) buildURL(u string, params map[string]string) string {
	full := u
	if a.baseURL != "" {
		full = a.baseURL + u
	}
	if len(params) == 0 {
		return full
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return full + "?" + q.Encode()
}

// responseError extracts a user-facing message from a failed response,
// falling back to a status-based message when the payload has none.
func responseError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}
