package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	assistanthttp "personal-assistant/internal/assistant/delivery/http"
	"personal-assistant/internal/message"
	"personal-assistant/internal/model"
	"personal-assistant/internal/router"
	"personal-assistant/pkg/gmail"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/response"
	"personal-assistant/pkg/telegram"
)

type mockAssistant struct {
	sendErr   error
	unread    []gmail.Message
	unreadErr error
	sent      assistant.SendEmailInput
}

func (m *mockAssistant) Classify(ctx context.Context, text string) router.Intent {
	return router.Intent{Action: router.ActionGetStockPrice, Params: map[string]string{"symbol": "AAPL"}, Confidence: 95, Rule: "stock"}
}

func (m *mockAssistant) Respond(ctx context.Context, text string) string { return "reply to " + text }

func (m *mockAssistant) Dispatch(ctx context.Context, text string, intent router.Intent) string {
	return ""
}

func (m *mockAssistant) DailySummary(ctx context.Context) string { return "summary" }

func (m *mockAssistant) EmailDigest(ctx context.Context, limit int) (assistant.EmailDigestOutput, error) {
	return assistant.EmailDigestOutput{}, nil
}

func (m *mockAssistant) UnreadEmails(ctx context.Context, limit int) ([]gmail.Message, error) {
	return m.unread, m.unreadErr
}

func (m *mockAssistant) SendEmail(ctx context.Context, input assistant.SendEmailInput) error {
	m.sent = input
	return m.sendErr
}

type mockMessages struct {
	listed message.ListInput
}

func (m *mockMessages) Record(ctx context.Context, input message.RecordInput) (model.Message, error) {
	return model.Message{}, nil
}

func (m *mockMessages) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

func (m *mockMessages) List(ctx context.Context, input message.ListInput) ([]model.Message, error) {
	m.listed = input
	return []model.Message{{ID: "m-1", ChatID: 7, Text: "hi", Response: "hello"}}, nil
}

type mockBot struct {
	configured bool
	sendOK     bool
	sentTo     int64
	webhook    string
	meErr      error
	deleteErr  error
}

func (b *mockBot) Configured() bool { return b.configured }

func (b *mockBot) GetMe(ctx context.Context) (telegram.User, error) {
	return telegram.User{ID: 42, Username: "assistant_bot"}, b.meErr
}

func (b *mockBot) GetWebhookInfo(ctx context.Context) (telegram.WebhookInfo, error) {
	return telegram.WebhookInfo{URL: b.webhook}, nil
}

func (b *mockBot) SetWebhook(ctx context.Context, webhookURL string) error {
	b.webhook = webhookURL
	return nil
}

func (b *mockBot) DeleteWebhook(ctx context.Context) error {
	if b.deleteErr != nil {
		return b.deleteErr
	}
	b.webhook = ""
	return nil
}

func (b *mockBot) Send(ctx context.Context, chatID int64, text string) bool {
	b.sentTo = chatID
	return b.sendOK
}

type fixture struct {
	uc       *mockAssistant
	messages *mockMessages
	bot      *mockBot
	r        *gin.Engine
}

func newFixture(cfg assistanthttp.Config) *fixture {
	gin.SetMode(gin.TestMode)
	f := &fixture{
		uc:       &mockAssistant{},
		messages: &mockMessages{},
		bot:      &mockBot{configured: true, sendOK: true},
		r:        gin.New(),
	}
	h := assistanthttp.New(log.NewNop(), f.uc, f.messages, f.bot, cfg)
	assistanthttp.RegisterRoutes(f.r.Group("/api/v1"), h)
	return f
}

func (f *fixture) do(method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	f.r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestAssistantEndpoints(t *testing.T) {
	f := newFixture(assistanthttp.Config{})

	t.Run("classify", func(t *testing.T) {
		w, resp := f.do(http.MethodPost, "/api/v1/assistant/classify", `{"text":"AAPL stock"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected %d but got %d", http.StatusOK, w.Code)
		}
		data := resp.Data.(map[string]any)
		if data["action"] != "get_stock_price" || data["confidence"] != float64(95) {
			t.Errorf("unexpected intent: %v", data)
		}
		if params := data["parameters"].(map[string]any); params["symbol"] != "AAPL" {
			t.Errorf("unexpected parameters: %v", params)
		}
	})

	t.Run("respond", func(t *testing.T) {
		_, resp := f.do(http.MethodPost, "/api/v1/assistant/respond", `{"text":"hello"}`)
		if data := resp.Data.(map[string]any); data["reply"] != "reply to hello" {
			t.Errorf("unexpected reply: %v", data)
		}
	})

	t.Run("blank text", func(t *testing.T) {
		w, _ := f.do(http.MethodPost, "/api/v1/assistant/respond", `{"text":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d but got %d", http.StatusBadRequest, w.Code)
		}
	})
}

func TestTelegramEndpoints(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{WebhookURL: "https://bot.example.com/webhook/telegram"})
		f.bot.webhook = "https://bot.example.com/webhook/telegram"

		_, resp := f.do(http.MethodGet, "/api/v1/telegram/status", "")
		data := resp.Data.(map[string]any)
		if data["configured"] != true {
			t.Fatalf("expected configured, got %v", data)
		}
		if bot := data["bot"].(map[string]any); bot["username"] != "assistant_bot" {
			t.Errorf("unexpected bot: %v", bot)
		}
		if wh := data["webhook"].(map[string]any); wh["url"] != f.bot.webhook {
			t.Errorf("unexpected webhook: %v", wh)
		}
	})

	t.Run("status unconfigured", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{})
		f.bot.configured = false

		w, resp := f.do(http.MethodGet, "/api/v1/telegram/status", "")
		if w.Code != http.StatusOK || resp.Data.(map[string]any)["configured"] != false {
			t.Errorf("expected unconfigured status, got %d %v", w.Code, resp.Data)
		}
	})

	t.Run("send uses default chat", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{DefaultChatID: 99})

		w, _ := f.do(http.MethodPost, "/api/v1/telegram/send", `{"text":"ping"}`)
		if w.Code != http.StatusOK || f.bot.sentTo != 99 {
			t.Errorf("expected delivery to 99, got %d to %d", w.Code, f.bot.sentTo)
		}
	})

	t.Run("send without any chat", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{})

		w, _ := f.do(http.MethodPost, "/api/v1/telegram/send", `{"text":"ping"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d but got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("send rejected", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{})
		f.bot.sendOK = false

		w, _ := f.do(http.MethodPost, "/api/v1/telegram/send", `{"chat_id":5,"text":"ping"}`)
		if w.Code != http.StatusBadGateway {
			t.Errorf("expected %d but got %d", http.StatusBadGateway, w.Code)
		}
	})

	t.Run("webhook setup with configured url", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{WebhookURL: "https://bot.example.com/webhook/telegram"})

		w, _ := f.do(http.MethodPost, "/api/v1/telegram/webhook/setup", "")
		if w.Code != http.StatusOK || f.bot.webhook != "https://bot.example.com/webhook/telegram" {
			t.Errorf("expected registration, got %d %q", w.Code, f.bot.webhook)
		}
	})

	t.Run("webhook setup without url", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{})

		w, _ := f.do(http.MethodPost, "/api/v1/telegram/webhook/setup", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d but got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("webhook delete", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{})
		f.bot.webhook = "https://bot.example.com/webhook/telegram"

		w, resp := f.do(http.MethodDelete, "/api/v1/telegram/webhook", "")
		if w.Code != http.StatusOK || f.bot.webhook != "" {
			t.Fatalf("expected removal, got %d %q", w.Code, f.bot.webhook)
		}
		if data := resp.Data.(map[string]any); data["deleted"] != true {
			t.Errorf("unexpected payload: %v", data)
		}
	})

	t.Run("webhook delete telegram failure", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{})
		f.bot.deleteErr = errors.New("connection refused")

		w, _ := f.do(http.MethodDelete, "/api/v1/telegram/webhook", "")
		if w.Code != http.StatusBadGateway {
			t.Errorf("expected %d but got %d", http.StatusBadGateway, w.Code)
		}
	})

	t.Run("webhook delete unconfigured", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{})
		f.bot.configured = false

		w, _ := f.do(http.MethodDelete, "/api/v1/telegram/webhook", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected %d but got %d", http.StatusServiceUnavailable, w.Code)
		}
	})
}

func TestListMessages(t *testing.T) {
	f := newFixture(assistanthttp.Config{})

	_, resp := f.do(http.MethodGet, "/api/v1/messages?chat_id=7&limit=10", "")
	if f.messages.listed.ChatID != 7 || f.messages.listed.Limit != 10 {
		t.Errorf("unexpected list input: %+v", f.messages.listed)
	}
	if data := resp.Data.(map[string]any); data["total"] != float64(1) {
		t.Errorf("unexpected payload: %v", data)
	}
}

func TestEmailEndpoints(t *testing.T) {
	t.Run("unread", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{})
		f.uc.unread = []gmail.Message{{ID: "1", Sender: "ann@example.com", Subject: "Hi"}}

		_, resp := f.do(http.MethodGet, "/api/v1/emails/unread?limit=3", "")
		if data := resp.Data.(map[string]any); data["count"] != float64(1) {
			t.Errorf("unexpected payload: %v", data)
		}
	})

	t.Run("unread not configured", func(t *testing.T) {
		f := newFixture(assistanthttp.Config{})
		f.uc.unreadErr = gmail.ErrNotConfigured

		w, _ := f.do(http.MethodGet, "/api/v1/emails/unread", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected %d but got %d", http.StatusServiceUnavailable, w.Code)
		}
	})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"sent", nil, http.StatusOK},
		{"invalid recipient", assistant.ErrInvalidRecipient, http.StatusBadRequest},
		{"rejected", assistant.ErrSendRejected, http.StatusBadGateway},
		{"not configured", gmail.ErrNotConfigured, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run("send "+tt.name, func(t *testing.T) {
			f := newFixture(assistanthttp.Config{})
			f.uc.sendErr = tt.err

			w, _ := f.do(http.MethodPost, "/api/v1/emails/send", `{"to":"bob@example.com","body":"hello"}`)
			if w.Code != tt.want {
				t.Errorf("expected %d but got %d", tt.want, w.Code)
			}
			if f.uc.sent.To != "bob@example.com" {
				t.Errorf("unexpected input: %+v", f.uc.sent)
			}
		})
	}
}
