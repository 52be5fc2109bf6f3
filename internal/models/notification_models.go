package models

// TelegramMessagePayload is the JSON payload sent to the Telegram Bot API
// sendMessage endpoint.
type TelegramMessagePayload struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

// DiscordMessagePayload is the JSON payload sent to a Discord webhook.
// Only the plain-text content field is used; the watcher sends short
// operator messages, not embeds.
type DiscordMessagePayload struct {
	Content  string `json:"content,omitempty"`
	Username string `json:"username,omitempty"`
}
