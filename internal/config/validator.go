package config

import (
	"github.com/go-playground/validator/v10"

	"ticketwatch/internal/common"
)

// ValidateConfig performs validation on the GlobalConfig structure using
// the struct tags declared on each config section.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return common.NewError("config is nil")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			first := validationErrors[0]
			return common.NewValidationError(first.Namespace(), first.Value(), "failed '"+first.Tag()+"' validation")
		}
		return common.WrapError(err, "config validation failed")
	}

	if cfg.NotificationConfig.Channel == ChannelDiscord && cfg.NotificationConfig.DiscordWebhookURL == "" {
		return common.NewValidationError("notification_config.discord_webhook_url", "", "required when channel is discord")
	}
	return nil
}
