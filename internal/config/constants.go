package config

// Default values shared by the config section constructors.
const (
	DefaultLandingURL = "https://www.koninklijke-serres-royales.be/fr/"
	DefaultTicketsURL = "https://www.koninklijke-serres-royales.be/fr/tickets"

	DefaultHTTPTimeoutSeconds = 25
	DefaultUserAgent          = "ticketwatch/2.0 (+https://github.com/ticketwatch)"
	DefaultMaxContentSize     = 2 * 1024 * 1024 // 2MB

	DefaultMarkerPhrase = "La date exacte de la mise en vente des tickets sera communiquée ultérieurement"

	DefaultMinKeywordHits           = 2
	DefaultMaxReportedLinks         = 10
	DefaultHeartbeatIntervalSeconds = 2 * 60 * 60

	DefaultStateFilePath = ".state.json"

	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 10

	// EnvConfigPath overrides config file discovery.
	EnvConfigPath = "TICKETWATCH_CONFIG_PATH"
	// EnvTelegramBotToken and EnvTelegramChatID carry the Telegram
	// credentials; they are required when the telegram channel is active.
	EnvTelegramBotToken = "TICKETWATCH_TG_BOT_TOKEN"
	EnvTelegramChatID   = "TICKETWATCH_TG_CHAT_ID"
)
