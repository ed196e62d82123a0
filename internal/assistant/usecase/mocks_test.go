package usecase_test

import (
	"context"
	"time"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/assistant/usecase"
	"personal-assistant/internal/router"
	"personal-assistant/pkg/gmail"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/quote"
	"personal-assistant/pkg/weather"
	"personal-assistant/pkg/worldclock"
)

type mockQuotes struct {
	stock  quote.StockQuote
	crypto quote.CryptoQuote
	err    error
	panics bool
	calls  int
	symbol string
}

func (m *mockQuotes) GetStock(ctx context.Context, symbol string) (quote.StockQuote, error) {
	m.calls++
	m.symbol = symbol
	if m.panics {
		panic("quote provider exploded")
	}
	return m.stock, m.err
}

func (m *mockQuotes) GetCrypto(ctx context.Context, symbol string) (quote.CryptoQuote, error) {
	m.calls++
	m.symbol = symbol
	if m.panics {
		panic("quote provider exploded")
	}
	return m.crypto, m.err
}

type mockWeather struct {
	reading weather.Reading
	err     error
	city    string
}

func (m *mockWeather) GetWeather(ctx context.Context, city string) (weather.Reading, error) {
	m.city = city
	return m.reading, m.err
}

type mockClock struct {
	reading worldclock.Reading
	city    string
}

func (m *mockClock) GetTime(city string) worldclock.Reading {
	m.city = city
	return m.reading
}

type mockMail struct {
	unread    []gmail.Message
	count     int
	err       error
	sent      bool
	sendErr   error
	sendCalls int
	to        string
	subject   string
	body      string
}

func (m *mockMail) GetUnread(ctx context.Context, max int) ([]gmail.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	if max < len(m.unread) {
		return m.unread[:max], nil
	}
	return m.unread, nil
}

func (m *mockMail) UnreadCount(ctx context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockMail) Send(ctx context.Context, to, subject, body string) (bool, error) {
	m.sendCalls++
	m.to, m.subject, m.body = to, subject, body
	if m.err != nil {
		return false, m.err
	}
	return m.sent, m.sendErr
}

type mockQA struct {
	answer    string
	err       error
	questions []string
}

func (m *mockQA) Answer(ctx context.Context, question string) (string, error) {
	m.questions = append(m.questions, question)
	return m.answer, m.err
}

type mockTasks struct {
	pending int
	err     error
}

func (m *mockTasks) CountPending(ctx context.Context) (int, error) {
	return m.pending, m.err
}

type mockArchive struct {
	archived []gmail.Message
	err      error
}

func (m *mockArchive) Archive(ctx context.Context, msgs []gmail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.archived = append(m.archived, msgs...)
	return nil
}

type deps struct {
	quotes  *mockQuotes
	weather *mockWeather
	clock   *mockClock
	mail    *mockMail
	qa      *mockQA
	tasks   *mockTasks
	archive *mockArchive
}

func newDeps() *deps {
	return &deps{
		quotes:  &mockQuotes{},
		weather: &mockWeather{},
		clock:   &mockClock{},
		mail:    &mockMail{},
		qa:      &mockQA{answer: "Here is what I know."},
		tasks:   &mockTasks{},
		archive: &mockArchive{},
	}
}

type testUseCase interface {
	assistant.UseCase
	SetNow(now func() time.Time)
}

func (d *deps) useCase() testUseCase {
	l := log.NewNop()
	return usecase.New(l, router.New(l), d.quotes, d.weather, d.clock, d.mail, d.qa, d.tasks, usecase.Options{EmailPageSize: 3, Archive: d.archive})
}
