package gateway

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/spinzone/backend/internal/config"
)

// Module exposes the gateway client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	env := SelectEnvironment(
		p.Config.GatewayEnvironment,
		p.Config.GatewayCommerceCode,
		p.Config.GatewayAPIKey,
		p.Config.GatewayForceIntegration,
		p.Logger,
	)
	return NewHTTPClient(env, p.Config.GatewayBaseURL, p.Logger)
}
