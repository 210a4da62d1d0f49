package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/gigwire/identity-go/config"
	redisadapter "github.com/gigwire/identity-go/internal/adapters/redis"
	"github.com/gigwire/identity-go/internal/data"
	"github.com/gigwire/identity-go/internal/ports"
	"github.com/gigwire/identity-go/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Profiles      *service.ProfileService
	Permissions   *service.PermissionService
	ActiveContext *service.ActiveContextService
	Actions       *service.ActionService
	Activity      *service.ActivityService
	AuthProvider  ports.AuthProvider
	SessionStore  ports.SessionStore
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires repositories, adapters, and services together.
func NewServices(deps *ServiceDeps) *ServiceContainer {
	accountRepo := data.NewAccountRepo(deps.DB)
	artistRepo := data.NewArtistRepo(deps.DB)
	venueRepo := data.NewVenueRepo(deps.DB)
	organizerRepo := data.NewOrganizerRepo(deps.DB)
	sessionRepo := data.NewSessionRepo(deps.DB)
	permissionRepo := data.NewPermissionRepo(deps.DB)
	activityRepo := data.NewActivityRepo(deps.DB)
	postRepo := data.NewPostRepo(deps.DB)

	profiles := service.NewProfileService(service.ProfileServiceOptions{
		Accounts:   accountRepo,
		Artists:    artistRepo,
		Venues:     venueRepo,
		Organizers: organizerRepo,
		Logger:     deps.Logger,
	})

	permissions := service.NewPermissionService(service.PermissionServiceOptions{
		Permissions: permissionRepo,
		Profiles:    profiles,
		Activity:    activityRepo,
		Logger:      deps.Logger,
	})

	var cache service.ActiveContextCache
	var sessionStore ports.SessionStore
	if deps.RedisClient != nil {
		cache = redisadapter.NewActiveProfileCacheWithTTL(deps.RedisClient, deps.Config.Cache.ActiveProfileTTL)
		sessionStore = redisadapter.NewSessionStore(deps.RedisClient)
	}

	activeContext := service.NewActiveContextService(service.ActiveContextServiceOptions{
		Sessions: sessionRepo,
		Profiles: profiles,
		Activity: activityRepo,
		Cache:    cache,
		Logger:   deps.Logger,
	})

	actions := service.NewActionService(service.ActionServiceOptions{
		Profiles:    profiles,
		Permissions: permissions,
		Artists:     artistRepo,
		Venues:      venueRepo,
		Organizers:  organizerRepo,
		Posts:       postRepo,
		Activity:    activityRepo,
		Logger:      deps.Logger,
	})

	activity := service.NewActivityService(service.ActivityServiceOptions{
		Activity: activityRepo,
		Logger:   deps.Logger,
	})

	return &ServiceContainer{
		Profiles:      profiles,
		Permissions:   permissions,
		ActiveContext: activeContext,
		Actions:       actions,
		Activity:      activity,
		AuthProvider:  BuildAuthProvider(deps.Config.Auth, deps.Logger),
		SessionStore:  sessionStore,
	}
}
