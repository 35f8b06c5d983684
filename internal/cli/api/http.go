package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"time"

	fsrepo "HomeStock/internal/cli/repo/fs"
)

// Client: HTTP-клиент CLI с таймаутом по умолчанию.
var Client = &http.Client{Timeout: 30 * time.Second}

// Do sends a request with an optional JSON payload. A nil payload sends no body.
// If token is non-empty, it is passed as auth cookie. The body is fully read and closed.
func Do(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var rd io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(req, token)
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return Do(context.Background(), http.MethodPost, url, payload, token)
}

// PostMultipartImage uploads data as the multipart field "image".
func PostMultipartImage(ctx context.Context, url, fileName string, data []byte, token string) (*http.Response, []byte, error) {
	if len(data) == 0 {
		return nil, nil, errors.New("empty image")
	}
	if fileName == "" {
		fileName = "image"
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", fileName)
	if err != nil {
		return nil, nil, err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return send(req, token)
}

func send(req *http.Request, token string) (*http.Response, []byte, error) {
	if token != "" {
		req.AddCookie(&http.Cookie{Name: fsrepo.CookieName, Value: token})
	}
	resp, err := Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, bytes.TrimSpace(body), nil
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет его в store.
func PersistAuthFromResponse(resp *http.Response, store fsrepo.AuthFSStore) error {
	for _, c := range resp.Cookies() {
		if c.Name == fsrepo.CookieName && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}

// Error: ответ сервера со статусом не 2xx.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if len(e.Fields) == 0 {
		return fmt.Sprintf("server status %d: %s", e.Status, msg)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("server status %d: %s (%s)", e.Status, msg, strings.Join(parts, "; "))
}

// ErrorFromResponse разбирает тело {"error","fields"}; не-JSON тело становится текстом ошибки.
func ErrorFromResponse(resp *http.Response, body []byte) *Error {
	e := &Error{Status: resp.StatusCode}
	var payload struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		e.Message, e.Fields = payload.Error, payload.Fields
		return e
	}
	e.Message = string(body)
	return e
}
