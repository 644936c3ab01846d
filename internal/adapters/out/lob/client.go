// Package lob integrates with the Lob print-and-mail API: letter dispatch
// for the send flow and US address verification for intake.
package lob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ceaseletter/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.lob.com/v1"
	defaultTimeout = 30 * time.Second
)

// Client talks to the Lob REST API. It implements both ports.MailCarrier
// and ports.AddressVerifier.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a Lob API client authenticated with the given secret key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
// Used by tests to point at a local stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type letterRequest struct {
	Description string        `json:"description"`
	To          letterAddress `json:"to"`
	From        letterAddress `json:"from"`
	File        string        `json:"file"`
	Color       bool          `json:"color"`
	UseType     string        `json:"use_type"`
}

type letterAddress struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressCity  string `json:"address_city,omitempty"`
	AddressState string `json:"address_state,omitempty"`
	AddressZip   string `json:"address_zip,omitempty"`
}

type letterResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	MailingID      string `json:"mailing_id"`
}

type verificationRequest struct {
	PrimaryLine   string `json:"primary_line"`
	SecondaryLine string `json:"secondary_line,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
}

type verificationResponse struct {
	Deliverability string         `json:"deliverability"`
	Components     map[string]any `json:"components"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// deliverableVerdicts are the Lob deliverability values we accept. Unit
// mismatches still reach the mailbox, so they count as deliverable.
var deliverableVerdicts = map[string]bool{
	"deliverable":                  true,
	"deliverable_unnecessary_unit": true,
	"deliverable_incorrect_unit":   true,
	"deliverable_missing_unit":     true,
}

// SendLetter submits the rendered letter for certified printing and mailing.
func (c *Client) SendLetter(ctx context.Context, req ports.DispatchRequest) (ports.LetterDispatch, error) {
	body := letterRequest{
		Description: fmt.Sprintf("cease letter %s", req.OrderID),
		To: letterAddress{
			Name:         req.Form.CollectorName,
			AddressLine1: req.Form.CollectorAddress,
		},
		From: letterAddress{
			Name:         req.Form.FullName,
			AddressLine1: req.Form.AddressLine1,
			AddressLine2: req.Form.AddressLine2,
			AddressCity:  req.Form.City,
			AddressState: req.Form.State,
			AddressZip:   req.Form.Zip,
		},
		File:    renderLetterHTML(req.LetterText),
		Color:   false,
		UseType: "operational",
	}

	var resp letterResponse
	if err := c.post(ctx, "/letters", body, &resp); err != nil {
		return ports.LetterDispatch{}, err
	}

	tracking := resp.TrackingNumber
	if tracking == "" {
		tracking = resp.ID
	}

	return ports.LetterDispatch{
		TrackingNumber: tracking,
		LetterID:       resp.ID,
		MailingID:      resp.MailingID,
	}, nil
}

// VerifyAddress checks deliverability of a US address.
func (c *Client) VerifyAddress(ctx context.Context, addr ports.AddressQuery) (ports.AddressVerification, error) {
	body := verificationRequest{
		PrimaryLine:   addr.AddressLine1,
		SecondaryLine: addr.AddressLine2,
		City:          addr.City,
		State:         addr.State,
		ZipCode:       addr.Zip,
	}

	var resp verificationResponse
	if err := c.post(ctx, "/us_verifications", body, &resp); err != nil {
		return ports.AddressVerification{}, err
	}

	return ports.AddressVerification{
		Deliverable:    deliverableVerdicts[resp.Deliverability],
		Deliverability: resp.Deliverability,
		Normalized:     resp.Components,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("lob %s: %s", path, apiErr.Error.Message)
		}
		return fmt.Errorf("lob %s: unexpected status %d", path, resp.StatusCode)
	}

	return json.Unmarshal(raw, out)
}

// renderLetterHTML wraps the plain letter body for Lob's HTML file input,
// preserving line breaks.
func renderLetterHTML(text string) string {
	return fmt.Sprintf(
		`<html><body style="font-family: serif; font-size: 12pt; white-space: pre-wrap; padding: 1in;">%s</body></html>`,
		text,
	)
}
