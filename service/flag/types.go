package flag

import (
	"github.com/lulielmo/AzureCostHandling/model"
)

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}
