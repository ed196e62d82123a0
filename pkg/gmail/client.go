package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gm "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	user        = "me"
	unreadQuery = "is:unread in:inbox"
	unreadLabel = "UNREAD"
	maxBodyLen  = 2000
)

// Client wraps the Gmail API service. A zero or nil Client is valid and reports
// ErrNotConfigured from every call.
type Client struct {
	service *gm.Service
}

// NewUnconfigured returns a client that reports ErrNotConfigured.
func NewUnconfigured() *Client {
	return &Client{}
}

// NewClientFromFiles creates a Gmail client from a credentials file and, for installed
// app credentials, a previously authorized token file.
func NewClientFromFiles(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts service account JSON (domain-wide delegation) or
// OAuth installed app JSON backed by tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	scopes := []string{gm.GmailReadonlyScope, gm.GmailSendScope, gm.GmailModifyScope}

	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, scopes...); err == nil {
		svc, err := gm.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
		if err != nil {
			return nil, fmt.Errorf("failed to create gmail service: %w", err)
		}
		return &Client{service: svc}, nil
	}

	oauthCfg, err := google.ConfigFromJSON(credentialsJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("gmail credentials are OAuth installed-app type but token %s is unreadable: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}

	svc, err := gm.NewService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service from OAuth token: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := gm.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Configured reports whether the client can reach Gmail.
func (c *Client) Configured() bool {
	return c != nil && c.service != nil
}

// GetUnread returns up to max unread inbox messages, newest first.
func (c *Client) GetUnread(ctx context.Context, max int) ([]Message, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	call := c.service.Users.Messages.List(user).Q(unreadQuery)
	msgs, err := c.list(ctx, call, max)
	if err != nil {
		return nil, fmt.Errorf("gmail list unread: %w", err)
	}
	return msgs, nil
}

// GetByLabel returns up to max messages carrying label (INBOX, STARRED, SENT...), newest first.
func (c *Client) GetByLabel(ctx context.Context, label string, max int) ([]Message, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	call := c.service.Users.Messages.List(user).LabelIds(strings.ToUpper(label))
	msgs, err := c.list(ctx, call, max)
	if err != nil {
		return nil, fmt.Errorf("gmail list %s: %w", label, err)
	}
	return msgs, nil
}

// GetMessage fetches one message by id.
func (c *Client) GetMessage(ctx context.Context, id string) (Message, error) {
	if !c.Configured() {
		return Message{}, ErrNotConfigured
	}
	msg, err := c.service.Users.Messages.Get(user, id).Format("full").Context(ctx).Do()
	if err != nil {
		return Message{}, wrapNotFound(fmt.Sprintf("gmail get %s", id), err)
	}
	return toMessage(msg), nil
}

// MarkAsRead removes the UNREAD label from a message.
func (c *Client) MarkAsRead(ctx context.Context, id string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	req := &gm.ModifyMessageRequest{RemoveLabelIds: []string{unreadLabel}}
	if _, err := c.service.Users.Messages.Modify(user, id, req).Context(ctx).Do(); err != nil {
		return wrapNotFound(fmt.Sprintf("gmail mark read %s", id), err)
	}
	return nil
}

// CreateDraft stores a plain text draft and returns its id.
func (c *Client) CreateDraft(ctx context.Context, to, subject, body string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	draft := &gm.Draft{Message: &gm.Message{Raw: buildRaw(to, subject, body)}}
	out, err := c.service.Users.Drafts.Create(user, draft).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail create draft: %w", err)
	}
	return out.Id, nil
}

func (c *Client) list(ctx context.Context, call *gm.UsersMessagesListCall, max int) ([]Message, error) {
	if max <= 0 {
		max = 10
	}
	list, err := call.MaxResults(int64(max)).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	out := make([]Message, 0, len(list.Messages))
	for _, ref := range list.Messages {
		msg, err := c.service.Users.Messages.Get(user, ref.Id).Format("full").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", ref.Id, err)
		}
		out = append(out, toMessage(msg))
	}
	return out, nil
}

// UnreadCount returns the number of unread messages in the inbox.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	if !c.Configured() {
		return 0, ErrNotConfigured
	}
	label, err := c.service.Users.Labels.Get(user, "INBOX").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("gmail inbox label: %w", err)
	}
	return int(label.MessagesUnread), nil
}

// Send sends a plain text message. A message Gmail rejects (4xx) is reported as
// (false, nil); transport failures and server errors are returned as errors.
func (c *Client) Send(ctx context.Context, to, subject, body string) (bool, error) {
	if !c.Configured() {
		return false, ErrNotConfigured
	}

	raw := buildRaw(to, subject, body)
	_, err := c.service.Users.Messages.Send(user, &gm.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 {
			return false, nil
		}
		return false, fmt.Errorf("gmail send: %w", err)
	}
	return true, nil
}

func wrapNotFound(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, ErrMessageNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func buildRaw(to, subject, body string) string {
	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

func toMessage(msg *gm.Message) Message {
	out := Message{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		Snippet:  msg.Snippet,
		Unread:   slices.Contains(msg.LabelIds, unreadLabel),
	}
	if msg.InternalDate > 0 {
		out.ReceivedAt = time.UnixMilli(msg.InternalDate).UTC()
	}
	if msg.Payload == nil {
		out.Body = msg.Snippet
		return out
	}

	for _, h := range msg.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "from":
			out.Sender = h.Value
		case "subject":
			out.Subject = h.Value
		}
	}
	if out.Subject == "" {
		out.Subject = "(no subject)"
	}

	out.Body = plainText(msg.Payload)
	if out.Body == "" {
		out.Body = msg.Snippet
	}
	if r := []rune(out.Body); len(r) > maxBodyLen {
		out.Body = string(r[:maxBodyLen])
	}
	return out
}

// plainText walks the MIME tree depth first and returns the first text/plain part.
func plainText(part *gm.MessagePart) string {
	if part == nil {
		return ""
	}
	if strings.HasPrefix(part.MimeType, "text/plain") && part.Body != nil && part.Body.Data != "" {
		data, err := base64.URLEncoding.DecodeString(part.Body.Data)
		if err != nil {
			data, err = base64.RawURLEncoding.DecodeString(part.Body.Data)
		}
		if err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	for _, p := range part.Parts {
		if text := plainText(p); text != "" {
			return text
		}
	}
	return ""
}
