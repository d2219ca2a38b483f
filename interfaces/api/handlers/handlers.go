package handlers

import (
	"github.com/google/uuid"

	"photo-dashboard/domain/repositories"
	"photo-dashboard/domain/services"
	"photo-dashboard/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
	SessionService services.SessionService
	DatasetService services.DatasetService
	Connections    ConnectionRegistry
}

// ConnectionRegistry is the websocket side of a session
type ConnectionRegistry interface {
	DisconnectSession(sessionID uuid.UUID)
	ConnectionCount() int
}

// Handlers contains all HTTP handlers
type Handlers struct {
	Session   *SessionHandler
	Query     *QueryHandler
	Selection *SelectionHandler
	Search    *SearchHandler
	People    *PeopleHandler
	Dataset   *DatasetHandler
	Log       *LogHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services, media repositories.MediaLocator, cfg *config.Config) *Handlers {
	return &Handlers{
		Session:   NewSessionHandler(services.SessionService, services.Connections, media),
		Query:     NewQueryHandler(services.SessionService),
		Selection: NewSelectionHandler(services.SessionService, media),
		Search:    NewSearchHandler(services.SessionService, media),
		People:    NewPeopleHandler(services.SessionService, media),
		Dataset:   NewDatasetHandler(services.DatasetService),
		Log:       NewLogHandler(cfg.Log.Dir),
	}
}
