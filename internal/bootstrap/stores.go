package bootstrap

import (
	"github.com/caseprepared/backend/internal/demo"
	"github.com/caseprepared/backend/internal/interview"
	"github.com/caseprepared/backend/internal/subscription"
	"github.com/caseprepared/backend/internal/template"
	"github.com/caseprepared/backend/internal/user"
	"github.com/qdrant/go-client/qdrant"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func ProvideUserStore(db *gorm.DB) *user.Store {
	return user.NewStore(db)
}

func ProvideSubscriptionStore(db *gorm.DB) *subscription.Store {
	return subscription.NewStore(db)
}

func ProvideTemplateStore(db *gorm.DB, qdrantClient *qdrant.Client) *template.Store {
	return template.NewStore(db, qdrantClient)
}

func ProvideInterviewStore(db *gorm.DB) *interview.Store {
	return interview.NewStore(db)
}

func ProvideDemoProgressStore(redisClient *redis.Client) *demo.ProgressStore {
	return demo.NewProgressStore(redisClient)
}

func RunMigrations(
	userStore *user.Store,
	subscriptionStore *subscription.Store,
	templateStore *template.Store,
	interviewStore *interview.Store,
) error {
	if err := userStore.Migrate(); err != nil {
		return err
	}
	if err := subscriptionStore.Migrate(); err != nil {
		return err
	}
	if err := templateStore.Migrate(); err != nil {
		return err
	}
	return interviewStore.Migrate()
}

var StoresModule = fx.Options(
	fx.Provide(
		ProvideUserStore,
		ProvideSubscriptionStore,
		ProvideTemplateStore,
		ProvideInterviewStore,
		ProvideDemoProgressStore,
	),
	fx.Invoke(RunMigrations),
)
