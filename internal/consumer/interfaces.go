package consumer

import (
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into
// customer records
type MessageParser interface {
	Parse(body []byte) (*domain.CustomerRecord, error)
}
