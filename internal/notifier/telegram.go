package notifier

import (
	"fmt"
	"strings"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/rendyak/karirku/internal/events"
	"github.com/rendyak/karirku/internal/logger"
	log "github.com/sirupsen/logrus"
)

// Telegram tells the reviewer chat when new work arrives: a submitted
// validation request or a stored application. It never drives domain state.
type Telegram struct {
	api    *botApi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64, bus EventBus.Bus) (*Telegram, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Notifier authorized on account %s", api.Self.UserName)

	err = botApi.SetLogger(log.StandardLogger())
	if err != nil {
		return nil, err
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	notifier := &Telegram{api: api, chatID: chatID}

	if err = bus.Subscribe(events.ValidationSubmittedTopic, notifier.onValidationSubmitted); err != nil {
		return nil, err
	}
	if err = bus.Subscribe(events.ApplicationSubmittedTopic, notifier.onApplicationSubmitted); err != nil {
		return nil, err
	}
	return notifier, nil
}

func (t *Telegram) onValidationSubmitted(event events.ValidationSubmitted) {
	t.send(fmt.Sprintf("New validation request #%d from user %s: %s (%s), status %s",
		event.Request.ID, event.Request.UserID, event.Request.JobPosition,
		event.Request.WorkExperience, event.Request.Status))
}

func (t *Telegram) onApplicationSubmitted(event events.ApplicationSubmitted) {
	t.send(fmt.Sprintf("New application #%d from user %s to %s: %s",
		event.Application.ID, event.Application.UserID, event.Company,
		strings.Join(event.Application.PositionNames(), ", ")))
}

func (t *Telegram) send(text string) {
	_, err := t.api.Send(botApi.NewMessage(t.chatID, text))
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTg).
			Errorf("failed to send reviewer notification: %v", err)
	}
}
