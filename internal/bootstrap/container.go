package bootstrap

import (
	"context"
	"log"

	"notes-be/internal/config"
	"notes-be/internal/controller"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/repository/contract"
	"notes-be/internal/repository/implementation"
	"notes-be/internal/repository/memory"
	"notes-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController
	UserController controller.IUserController
	AuthController controller.IAuthController

	// Background services (exposed for main.go to run)
	ReconcilerService service.IReconcilerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Store selection: the handlers are agnostic to the backend behind the
	// repository contracts.
	var noteRepo contract.NoteRepository
	var userRepo contract.UserRepository
	if cfg.Database.Driver == "memory" || db == nil {
		memNotes := memory.NewNoteRepository()
		memUsers := memory.NewUserRepository()
		if err := memory.Seed(context.Background(), memNotes, memUsers); err != nil {
			log.Panicf("Unable to seed in-memory store: %v", err)
		}
		noteRepo = memNotes
		userRepo = memUsers
		sysLogger.Info("bootstrap", "using in-memory store", nil)
	} else {
		noteRepo = implementation.NewNoteRepository(db)
		userRepo = implementation.NewUserRepository(db)
		sysLogger.Info("bootstrap", "using postgres store", nil)
	}

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Services
	publisherService := service.NewPublisherService(pubSub)
	noteService := service.NewNoteService(noteRepo, userRepo, publisherService, sysLogger)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	reconcilerService := service.NewReconcilerService(pubSub, userRepo, sysLogger)

	// Controllers
	authGuard := serverutils.NewJwtMiddleware(cfg.Auth.Secret)
	noteController := controller.NewNoteController(noteService, authGuard, cfg.Notes.Auth)
	userController := controller.NewUserController(userService)
	authController := controller.NewAuthController(authService)

	return &Container{
		NoteController:    noteController,
		UserController:    userController,
		AuthController:    authController,
		ReconcilerService: reconcilerService,
		Logger:            sysLogger,
	}
}
