package config

import "github.com/spf13/viper"

// NotifierConfig is optional: with an empty token the reviewer notifier is
// not started.
type NotifierConfig struct {
	TelegramToken  string `mapstructure:"telegram_token"`
	ReviewerChatID int64  `mapstructure:"reviewer_chat_id"`
}

func (config NotifierConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("notifier.telegram_token", "NOTIFIER_TG_TOKEN")
	if err != nil {
		return err
	}

	return viper.BindEnv("notifier.reviewer_chat_id", "NOTIFIER_REVIEWER_CHAT_ID")
}
