package router

import (
	"github.com/iamonjarvis/anywork-backend/internal/application"
	"github.com/iamonjarvis/anywork-backend/internal/container"
	"github.com/iamonjarvis/anywork-backend/internal/infrastructure/mongodb"
	handlers "github.com/iamonjarvis/anywork-backend/internal/interface/http"
	"github.com/iamonjarvis/anywork-backend/internal/realtime"
	"github.com/iamonjarvis/anywork-backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup, after the container holds the
// infra singletons.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo()
	jwt := container.GetJWT()

	users := mongodb.NewUserRepository(db)
	jobs := mongodb.NewJobRepository(db)
	contacts := mongodb.NewContactRepository(db)
	messages := mongodb.NewMessageRepository(db)
	notifications := mongodb.NewNotificationRepository(db)

	notifier := application.NewQueueNotifier(container.GetRabbitPub(), logger)

	authSvc := application.NewAuthService(users, jwt, logger)
	jobSvc := application.NewJobService(jobs, users, container.GetRedis(), cfg.JobsCacheTTL, notifier, logger)
	contactSvc := application.NewContactService(contacts, users, logger)
	messageSvc := application.NewMessageService(messages, container.GetBus(), notifier, logger)

	gateway := realtime.NewGateway(container.GetHub(), container.GetBus(), jobs, messages, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, notifications, logger), jwt))
	r.Add(modules.NewJobModule(handlers.NewJobHandler(jobSvc, logger), jwt))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger), jwt))
	r.Add(modules.NewMessageModule(handlers.NewMessageHandler(messageSvc, logger), jwt))
	r.Add(modules.NewChatModule(handlers.NewWSHandler(container.GetHub(), gateway, jwt, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
