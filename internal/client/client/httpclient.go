package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/young-sensey/dochub/internal/client/models"
	"github.com/young-sensey/dochub/internal/logging"
)

// HTTPClient talks to the DocHub REST API. Every request, JSON and multipart
// alike, goes through the interceptor chain, so credential attachment and
// 401 handling are uniform across endpoints.
type HTTPClient struct {
	baseURL string
	origin  string
	http    Doer
	log     logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL. The base Doer
// (normally an *http.Client with a timeout) is wrapped with the given
// interceptors in order.
func NewHTTPClient(baseURL string, base Doer, log logging.Logger, interceptors ...Interceptor) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		origin:  u.Scheme + "://" + u.Host,
		http:    Chain(base, interceptors...),
		log:     log.With("component", "api"),
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, login, password string) (string, models.User, error) {
	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	body := map[string]string{"login": login, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", models.User{}, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, login, password string) error {
	body := map[string]string{"login": login, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", body, nil)
}

func (c *HTTPClient) ListDocuments(ctx context.Context, filter ListFilter) ([]models.Document, error) {
	path := "/dock"
	if filter.CategoryID != "" {
		path += "?category_id=" + url.QueryEscape(filter.CategoryID)
	}
	var docs []models.Document
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *HTTPClient) GetDocument(ctx context.Context, id int) (models.Document, error) {
	var doc models.Document
	err := c.doJSON(ctx, http.MethodGet, "/dock/"+strconv.Itoa(id), nil, &doc)
	return doc, err
}

// CreateDocument submits fields and the optional attachment as one multipart
// request. The submission is atomic from the client's view: either the
// server creates the document (with file_path populated when a file was
// sent) or nothing is saved.
func (c *HTTPClient) CreateDocument(ctx context.Context, fields models.DocumentFields, attachment *Attachment) (models.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	parts := map[string]string{
		"title":   fields.Title,
		"content": fields.Content,
		"author":  fields.Author,
	}
	if fields.CategoryID != nil {
		parts["category_id"] = strconv.Itoa(*fields.CategoryID)
	}
	for name, value := range parts {
		if err := mw.WriteField(name, value); err != nil {
			return models.Document{}, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if attachment != nil {
		fw, err := mw.CreateFormFile("file", attachment.Name)
		if err != nil {
			return models.Document{}, fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(fw, attachment.Data); err != nil {
			return models.Document{}, fmt.Errorf("copy attachment: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return models.Document{}, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/dock", &buf)
	if err != nil {
		return models.Document{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var doc models.Document
	if err := c.exchange(req, &doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

func (c *HTTPClient) UpdateDocument(ctx context.Context, id int, fields models.DocumentFields) (models.Document, error) {
	var doc models.Document
	err := c.doJSON(ctx, http.MethodPut, "/dock/"+strconv.Itoa(id), fields, &doc)
	return doc, err
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/dock/"+strconv.Itoa(id), nil, nil)
}

// DownloadAttachment fetches the document's file as a binary stream. The
// download endpoint is addressed root-relative (off the server origin), not
// under the JSON base path.
func (c *HTTPClient) DownloadAttachment(ctx context.Context, id int) ([]byte, error) {
	u := c.origin + "/dock/" + strconv.Itoa(id) + "/download"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read download: %w", err)
	}
	return data, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *HTTPClient) GetCategory(ctx context.Context, id int) (models.Category, error) {
	var cat models.Category
	err := c.doJSON(ctx, http.MethodGet, "/categories/"+strconv.Itoa(id), nil, &cat)
	return cat, err
}

func (c *HTTPClient) CreateCategory(ctx context.Context, fields models.CategoryFields) (models.Category, error) {
	var cat models.Category
	err := c.doJSON(ctx, http.MethodPost, "/categories", fields, &cat)
	return cat, err
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id int, fields models.CategoryFields) (models.Category, error) {
	var cat models.Category
	err := c.doJSON(ctx, http.MethodPut, "/categories/"+strconv.Itoa(id), fields, &cat)
	return cat, err
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/categories/"+strconv.Itoa(id), nil, nil)
}

// doJSON performs a JSON request against the API base path and decodes the
// response into out (which may be nil for empty responses).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.exchange(req, out)
}

func (c *HTTPClient) exchange(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps non-2xx responses to sentinel errors where callers need
// to branch, and to a wrapped server message otherwise.
func (c *HTTPClient) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(raw))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
}
