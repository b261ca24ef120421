package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client sends one-time codes through the provider's SmsOTP endpoint.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = "https://s.api.ir"
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type otpRequest struct {
	Code     string `json:"code"`
	Mobile   string `json:"mobile"`
	Template int    `json:"template"`
}

// SendOTP delivers the code to the phone number. Non-2xx responses and
// transport failures are returned to the caller.
func (c *Client) SendOTP(ctx context.Context, phone, code string) error {
	body, _ := json.Marshal(otpRequest{Code: code, Mobile: phone, Template: 0})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/sw1/SmsOTP", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sms api: %d %s", resp.StatusCode, string(respBody))
	}
	return nil
}
