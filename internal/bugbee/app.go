// Package bugbee wires the domain stores into application services.
package bugbee

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/bugbee/internal/core/activity"
	"github.com/colonyops/bugbee/internal/core/config"
	"github.com/colonyops/bugbee/internal/core/eventbus"
	"github.com/colonyops/bugbee/internal/core/member"
	"github.com/colonyops/bugbee/internal/core/project"
	"github.com/colonyops/bugbee/internal/core/workitem"
	"github.com/colonyops/bugbee/internal/data/db"
)

// App is the central entry point for all bugbee operations.
// Commands and the HTTP server consume App instead of cherry-picking raw
// dependencies.
type App struct {
	Items     *ItemService
	Focus     *FocusService
	Directory *DirectoryService

	Bus    *eventbus.EventBus
	Config *config.Config
	DB     *db.DB
}

// NewApp constructs an App from explicit dependencies.
func NewApp(
	cfg *config.Config,
	database *db.DB,
	bus *eventbus.EventBus,
	items workitem.Store,
	members member.Store,
	projects project.Store,
	activities activity.Store,
	log zerolog.Logger,
) *App {
	return &App{
		Items:     NewItemService(items, projects, activities, cfg, bus, log),
		Focus:     NewFocusService(items, members, log),
		Directory: NewDirectoryService(members, projects, log),
		Bus:       bus,
		Config:    cfg,
		DB:        database,
	}
}
