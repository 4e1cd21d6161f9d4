// Package client 是後端 API 的 Go client：送 JSON、收 envelope，
// 並把失敗分成三類（server 有回錯誤 / 送出但沒回應 / 根本沒送出）
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type ErrorKind int

const (
	// server 有回應且帶錯誤 body → 顯示 server 的 message
	ErrServerRejected ErrorKind = iota
	// 請求送出去了但拿不到回應（斷線、逾時）
	ErrNoResponse
	// 請求根本沒組起來（本地端錯誤）
	ErrNotSent
)

type SubmitError struct {
	Kind    ErrorKind
	Status  int // 只有 ErrServerRejected 有值
	Message string
}

func (e *SubmitError) Error() string { return e.Message }

type UserInfo struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type registerPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register 對應 POST /register；nil 表示 201 成功
func (c *Client) Register(ctx context.Context, fullName, email, password string) *SubmitError {
	return c.post(ctx, "/register", registerPayload{fullName, email, password}, nil)
}

// Login 對應 POST /login；成功回 server 存的 id/email/fullName
func (c *Client) Login(ctx context.Context, email, password string) (UserInfo, *SubmitError) {
	var out struct {
		User UserInfo `json:"user"`
	}
	if err := c.post(ctx, "/login", loginPayload{email, password}, &out); err != nil {
		return UserInfo{}, err
	}
	return out.User, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) *SubmitError {
	b, err := json.Marshal(payload)
	if err != nil {
		return &SubmitError{Kind: ErrNotSent, Message: err.Error()}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return &SubmitError{Kind: ErrNotSent, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &SubmitError{Kind: ErrNoResponse, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &env)

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &SubmitError{Kind: ErrServerRejected, Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		_ = json.Unmarshal(body, out)
	}
	return nil
}
