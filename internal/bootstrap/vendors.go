package bootstrap

import (
	"log/slog"

	"github.com/caseprepared/backend/internal/analysis"
	"github.com/caseprepared/backend/internal/credential"
	"github.com/caseprepared/backend/internal/images"
	"github.com/caseprepared/backend/internal/practice"
	"github.com/caseprepared/backend/internal/subscription"
	"github.com/caseprepared/backend/internal/template"
	"github.com/caseprepared/backend/internal/transcription"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func ProvideKeyRing(cfg *Config, redisClient *redis.Client) *credential.KeyRing {
	return credential.NewKeyRing(cfg.OpenAIKeys, redisClient)
}

func ProvideRealtimeClient() *credential.RealtimeClient {
	return credential.NewRealtimeClient()
}

func ProvideTwilioClient(cfg *Config) *credential.TwilioClient {
	return credential.NewTwilioClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
}

func ProvideCredentialService(
	ring *credential.KeyRing,
	realtime *credential.RealtimeClient,
	twilio *credential.TwilioClient,
	logger *slog.Logger,
) *credential.Service {
	return credential.NewService(ring, realtime, twilio, logger.With("service", "credential"))
}

func ProvideChatClient(ring *credential.KeyRing) *credential.ChatClient {
	return credential.NewChatClient(ring)
}

func ProvideAnalysisService(chat *credential.ChatClient, logger *slog.Logger) *analysis.Service {
	return analysis.NewService(chat, logger.With("service", "analysis"))
}

func ProvideTranscriptionClient(cfg *Config) *transcription.Client {
	return transcription.NewClient(cfg.AssemblyAIKey)
}

func ProvideTranscriptionRelay(cfg *Config, logger *slog.Logger) *transcription.Relay {
	return transcription.NewRelay(cfg.AssemblyAIKey, logger.With("service", "transcription"))
}

func ProvideImagesClient(cfg *Config) *images.Client {
	return images.NewClient(cfg.CloudflareAccountID, cfg.CloudflareAPIToken, cfg.ImageDeliveryURL)
}

func ProvidePracticeTokens(cfg *Config) *practice.TokenService {
	return practice.NewTokenService(cfg.LiveKitAPIKey, cfg.LiveKitAPISecret, cfg.LiveKitURL)
}

// ProvideBilling returns a true nil interface when Stripe is unconfigured;
// a typed nil pointer would not compare equal to nil in the handler.
func ProvideBilling(cfg *Config) subscription.Billing {
	b := subscription.NewStripeBilling(cfg.StripeAPIKey, cfg.StripeWebhookSecret)
	if b == nil {
		return nil
	}
	return b
}

func ProvideEmbeddings(cfg *Config) template.EmbeddingService {
	var key string
	if len(cfg.OpenAIKeys) > 0 {
		key = cfg.OpenAIKeys[0]
	}
	e := template.NewOpenAIEmbeddings(key)
	if e == nil {
		return nil
	}
	return e
}

var VendorsModule = fx.Options(
	fx.Provide(
		ProvideKeyRing,
		ProvideRealtimeClient,
		ProvideTwilioClient,
		ProvideCredentialService,
		ProvideChatClient,
		ProvideAnalysisService,
		ProvideTranscriptionClient,
		ProvideTranscriptionRelay,
		ProvideImagesClient,
		ProvidePracticeTokens,
		ProvideBilling,
		ProvideEmbeddings,
	),
)
