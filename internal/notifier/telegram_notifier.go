package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"ticketwatch/internal/common"
	"ticketwatch/internal/models"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier sends messages through the Telegram Bot API
// sendMessage endpoint.
type TelegramNotifier struct {
	logger     zerolog.Logger
	httpClient *http.Client
	apiBase    string
	token      string
	chatID     string
}

// NewTelegramNotifier creates a new TelegramNotifier.
func NewTelegramNotifier(logger zerolog.Logger, httpClient *http.Client, token, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		logger:     logger.With().Str("component", "TelegramNotifier").Logger(),
		httpClient: httpClient,
		apiBase:    telegramAPIBase,
		token:      token,
		chatID:     chatID,
	}
}

// WithAPIBase overrides the Telegram API base URL. Used by tests.
func (tn *TelegramNotifier) WithAPIBase(base string) *TelegramNotifier {
	tn.apiBase = base
	return tn
}

// Send posts a sendMessage request with link previews disabled.
func (tn *TelegramNotifier) Send(ctx context.Context, text string) error {
	payload := models.TelegramMessagePayload{
		ChatID:                tn.chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return common.WrapError(err, "failed to marshal telegram payload")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", tn.apiBase, tn.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return common.WrapError(err, "failed to create telegram request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := tn.httpClient.Do(req)
	if err != nil {
		return common.NewNetworkError("telegram sendMessage", "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		tn.logger.Error().Int("status_code", resp.StatusCode).Msg("Telegram rejected the notification")
		return common.NewHTTPError("telegram sendMessage", resp.StatusCode, string(respBody))
	}

	tn.logger.Debug().Msg("Telegram notification sent")
	return nil
}
