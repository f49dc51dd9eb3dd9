package internal

import (
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// AppInternal aggregates every controller exposed as a CLI subcommand.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application aggregate.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
