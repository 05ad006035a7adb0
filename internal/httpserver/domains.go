package httpserver

import (
	"context"

	credentialHTTP "github.com/elhenawym124-ops/chatai-sub002/internal/credential/delivery/http"
	credentialRepo "github.com/elhenawym124-ops/chatai-sub002/internal/credential/repository/postgre"
	credentialUC "github.com/elhenawym124-ops/chatai-sub002/internal/credential/usecase"
	"github.com/elhenawym124-ops/chatai-sub002/internal/middleware"
	patternRepo "github.com/elhenawym124-ops/chatai-sub002/internal/pattern/postgre"
	promptHTTP "github.com/elhenawym124-ops/chatai-sub002/internal/prompt/delivery/http"
	promptRepo "github.com/elhenawym124-ops/chatai-sub002/internal/prompt/repository/postgre"
	promptUC "github.com/elhenawym124-ops/chatai-sub002/internal/prompt/usecase"
	"github.com/elhenawym124-ops/chatai-sub002/internal/quota"
	routingHTTP "github.com/elhenawym124-ops/chatai-sub002/internal/routing/delivery/http"
	routingUC "github.com/elhenawym124-ops/chatai-sub002/internal/routing/usecase"
	usageHTTP "github.com/elhenawym124-ops/chatai-sub002/internal/usage/delivery/http"
	usageRepo "github.com/elhenawym124-ops/chatai-sub002/internal/usage/repository/postgre"
	usageUC "github.com/elhenawym124-ops/chatai-sub002/internal/usage/usecase"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/gemini"
)

// registerDomainRoutes wires every domain bottom-up: repositories, then
// usecases sharing the quota tracker and provider client, then HTTP
// handlers under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtSecret)
	api := srv.gin.Group("/api/v1")

	// Shared AI infrastructure: one quota authority and one provider
	// client for the whole process.
	tracker := quota.NewTracker(srv.quota)

	var geminiOpts []gemini.Option
	if srv.geminiAPIURL != "" {
		geminiOpts = append(geminiOpts, gemini.WithAPIURL(srv.geminiAPIURL))
	}
	client := gemini.NewClient(geminiOpts...)

	// Credential registry
	credRepository := credentialRepo.New(srv.db, srv.l)
	credUseCase := credentialUC.New(credRepository, credentialUC.Config{ResetWindow: srv.quota.ResetWindow}, srv.l)
	credentialHTTP.RegisterRoutes(api, credentialHTTP.New(srv.l, credUseCase), mw)
	srv.l.Infof(ctx, "Credential domain registered")

	// Prompt composition
	promptRepository := promptRepo.New(srv.db, srv.l)
	patterns := patternRepo.New(srv.db, srv.l)
	promptUseCase := promptUC.New(promptRepository, patterns, srv.l)
	promptHTTP.RegisterRoutes(api, promptHTTP.New(srv.l, promptUseCase), mw)
	srv.l.Infof(ctx, "Prompt domain registered")

	// Usage reporting
	usageRepository := usageRepo.New(srv.db, srv.l)
	usageUseCase := usageUC.New(usageRepository, srv.l)
	usageHTTP.RegisterRoutes(api, usageHTTP.New(srv.l, usageUseCase), mw)
	srv.l.Infof(ctx, "Usage domain registered")

	// Router on top of everything
	routingUseCase := routingUC.New(credUseCase, promptUseCase, usageUseCase, tracker, client, srv.routing, srv.l)
	routingHTTP.RegisterRoutes(api, routingHTTP.New(srv.l, routingUseCase), mw)
	srv.l.Infof(ctx, "Routing domain registered")

	return nil
}
