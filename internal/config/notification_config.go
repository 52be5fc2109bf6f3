package config

// Notification channels supported by the watcher.
const (
	ChannelTelegram = "telegram"
	ChannelDiscord  = "discord"
	ChannelNone     = "none"
)

// NotificationConfig selects and configures the notification channel.
// Credentials (Telegram bot token and chat ID) are read from the
// environment, never from the config file.
type NotificationConfig struct {
	Channel           string `json:"channel,omitempty" yaml:"channel,omitempty" validate:"omitempty,oneof=telegram discord none"`
	DiscordWebhookURL string `json:"discord_webhook_url,omitempty" yaml:"discord_webhook_url,omitempty" validate:"omitempty,url"`
	BotUsername       string `json:"bot_username,omitempty" yaml:"bot_username,omitempty"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Channel:     ChannelTelegram,
		BotUsername: "ticketwatch",
	}
}
