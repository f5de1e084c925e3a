package events

import "github.com/rendyak/karirku/internal/entities"

var ApplicationSubmittedTopic = "ApplicationSubmittedEvent"

type ApplicationSubmitted struct {
	Application entities.Application
	Company     string
}
