package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/collabverse/site/config"
)

// Client posts site events to the configured webhook.
type Client struct {
	url        string
	httpClient *http.Client
}

// Event is the JSON payload posted to the webhook.
type Event struct {
	Kind      string            `json:"kind"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// New creates a webhook client for the given URL.
func New(url string) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("missing webhook URL")
	}

	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Send posts one event to the webhook.
func (c *Client) Send(e Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	jsonData, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook error: %d", resp.StatusCode)
	}

	log.Printf("[NOTIFY] %s event delivered", e.Kind)
	return nil
}

// defaultClient is nil when no webhook is configured; events are then dropped.
var defaultClient *Client

// Init wires the package-level client from configuration.
func Init() {
	client, err := New(config.ContactWebhookURL)
	if err != nil {
		log.Printf("[NOTIFY] webhook notifications disabled: %v", err)
		return
	}
	defaultClient = client
	log.Printf("[NOTIFY] webhook notifications enabled")
}

// WaitlistSignup announces a new waitlist signup.
func WaitlistSignup(email, source string) {
	dispatch(Event{
		Kind:    "waitlist_signup",
		Message: fmt.Sprintf("New waitlist signup: %s", email),
		Fields:  map[string]string{"email": email, "source": source},
	})
}

// ContactMessage announces a new contact message.
func ContactMessage(name, email, subject string) {
	dispatch(Event{
		Kind:    "contact_message",
		Message: fmt.Sprintf("New contact message from %s: %s", name, subject),
		Fields:  map[string]string{"name": name, "email": email, "subject": subject},
	})
}

// dispatch sends in the background so handlers never wait on the webhook.
func dispatch(e Event) {
	if defaultClient == nil {
		return
	}
	go func() {
		if err := defaultClient.Send(e); err != nil {
			log.Printf("[NOTIFY] delivering %s event failed: %v", e.Kind, err)
		}
	}()
}
