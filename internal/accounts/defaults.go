package accounts

import "github.com/recoup-dev/recoup/internal/model"

// DefaultRoster returns the roster written by init: a single account with
// the given name and broker.
func DefaultRoster(name, broker string) []model.Account {
	if name == "" {
		name = "main"
	}
	if broker == "" {
		broker = "robinhood"
	}
	return []model.Account{
		{Name: name, Broker: broker},
	}
}
