package wire

import (
	"Recipeo/internal/api"
	"Recipeo/internal/api/handler"
	"Recipeo/internal/job"
	"Recipeo/internal/pkg/cron"
	mongodb "Recipeo/internal/pkg/mongo"
	"Recipeo/internal/repository"
	"Recipeo/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	banRepo := repository.NewBanRepo(db)
	reportRepo := repository.NewReportRepo(db)
	postRepo := mongodb.NewPostRepo(mongoDB)

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, userRepo)
	postActionService := service.NewPostActionService(postRepo, userRepo)
	moderationService := service.NewModerationService(banRepo, reportRepo, userRepo, postRepo)
	mediaService := service.NewMediaService()

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(userService),
		UserHandler:       handler.NewUserHandler(userService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
		ModerationHandler: handler.NewModerationHandler(moderationService),
		MediaHandler:      handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewBanSyncJob(banRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
