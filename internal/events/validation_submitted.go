package events

import "github.com/rendyak/karirku/internal/entities"

var ValidationSubmittedTopic = "ValidationSubmittedEvent"

type ValidationSubmitted struct {
	Request entities.ValidationRequest
}
