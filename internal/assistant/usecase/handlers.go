package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-assistant/internal/router"
)

func (uc *implUseCase) stockPrice(ctx context.Context, intent router.Intent) (string, bool, error) {
	symbol := paramOr(intent, router.ParamSymbol, router.DefaultTicker)
	q, err := uc.quotes.GetStock(ctx, symbol)
	if err != nil {
		return "", false, fmt.Errorf("stock %s: %w", symbol, err)
	}
	return FormatStock(q), q.Success, nil
}

func (uc *implUseCase) cryptoPrice(ctx context.Context, intent router.Intent) (string, bool, error) {
	symbol := paramOr(intent, router.ParamSymbol, router.DefaultCrypto)
	q, err := uc.quotes.GetCrypto(ctx, symbol)
	if err != nil {
		return "", false, fmt.Errorf("crypto %s: %w", symbol, err)
	}
	return FormatCrypto(q), q.Success, nil
}

func (uc *implUseCase) localTime(intent router.Intent) (string, bool, error) {
	r := uc.clock.GetTime(paramOr(intent, router.ParamCity, router.DefaultCity))
	return FormatTime(r), r.Success, nil
}

func (uc *implUseCase) currentWeather(ctx context.Context, intent router.Intent) (string, bool, error) {
	city := paramOr(intent, router.ParamCity, router.DefaultCity)
	r, err := uc.weather.GetWeather(ctx, city)
	if err != nil {
		return "", false, fmt.Errorf("weather %s: %w", city, err)
	}
	return FormatWeather(r), r.Success, nil
}

func (uc *implUseCase) readEmails(ctx context.Context) (string, bool, error) {
	msgs, err := uc.mail.GetUnread(ctx, uc.pageSize)
	if err != nil {
		return "", false, err
	}
	return FormatEmails(msgs), true, nil
}

func (uc *implUseCase) sendEmail(ctx context.Context, intent router.Intent) (string, bool, error) {
	recipient := intent.Param(router.ParamRecipient)
	if !strings.Contains(recipient, "@") {
		return MsgInvalidRecipient, false, nil
	}
	body := strings.TrimSpace(intent.Param(router.ParamBody))
	if body == "" {
		return MsgMissingBody, false, nil
	}
	subject := paramOr(intent, router.ParamSubject, router.DefaultEmailSubject)

	sent, err := uc.mail.Send(ctx, recipient, subject, body)
	if err != nil {
		return "", false, err
	}
	if !sent {
		return fmt.Sprintf(MsgSendFailed, escape(recipient)), false, nil
	}
	return FormatEmailSent(recipient, body), true, nil
}

func paramOr(intent router.Intent, key, fallback string) string {
	if v := strings.TrimSpace(intent.Param(key)); v != "" {
		return v
	}
	return fallback
}
