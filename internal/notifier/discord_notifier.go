package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"ticketwatch/internal/common"
	"ticketwatch/internal/models"
)

// DiscordNotifier sends messages to a Discord webhook as plain content.
type DiscordNotifier struct {
	logger     zerolog.Logger
	httpClient *http.Client
	webhookURL string
	username   string
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(logger zerolog.Logger, httpClient *http.Client, webhookURL, username string) *DiscordNotifier {
	return &DiscordNotifier{
		logger:     logger.With().Str("component", "DiscordNotifier").Logger(),
		httpClient: httpClient,
		webhookURL: webhookURL,
		username:   username,
	}
}

// Send posts the message payload to the webhook.
func (dn *DiscordNotifier) Send(ctx context.Context, text string) error {
	payload := models.DiscordMessagePayload{
		Content:  text,
		Username: dn.username,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return common.WrapError(err, "failed to marshal discord payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, dn.webhookURL, bytes.NewReader(body))
	if err != nil {
		return common.WrapError(err, "failed to create discord request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := dn.httpClient.Do(req)
	if err != nil {
		return common.NewNetworkError("discord webhook", "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		dn.logger.Error().Int("status_code", resp.StatusCode).Msg("Discord rejected the notification")
		return common.NewHTTPError("discord webhook", resp.StatusCode, string(respBody))
	}

	dn.logger.Debug().Msg("Discord notification sent")
	return nil
}
