package gateway

import "log/slog"

// Gateway endpoints and the well-known integration credentials published for
// sandbox use.
const (
	IntegrationBaseURL = "https://webpay3gint.transbank.cl"
	ProductionBaseURL  = "https://webpay3g.transbank.cl"

	IntegrationCommerceCode = "597055555532"
	IntegrationAPIKey       = "579B532A7440BB0C9079DED94D31EA1615BACEB56610332264630D42D0A36B1C"
)

// Environment is the resolved gateway configuration: base URL plus the
// credentials every outbound call authenticates with.
type Environment struct {
	Name         string
	BaseURL      string
	CommerceCode string
	APIKey       string
}

// Integration returns the sandbox environment.
func Integration() Environment {
	return Environment{
		Name:         "integration",
		BaseURL:      IntegrationBaseURL,
		CommerceCode: IntegrationCommerceCode,
		APIKey:       IntegrationAPIKey,
	}
}

// Production returns the live environment with merchant credentials.
func Production(commerceCode, apiKey string) Environment {
	return Environment{
		Name:         "production",
		BaseURL:      ProductionBaseURL,
		CommerceCode: commerceCode,
		APIKey:       apiKey,
	}
}

// SelectEnvironment resolves which environment to talk to. Production is used
// only when requested, not overridden by forceIntegration, and fully
// credentialed; otherwise the sandbox is selected. Falling back instead of
// failing keeps checkout online under misconfiguration, at the cost of
// processing sandbox transactions — hence the warning.
func SelectEnvironment(env string, commerceCode, apiKey string, forceIntegration bool, logger *slog.Logger) Environment {
	if env != "production" {
		return Integration()
	}
	if forceIntegration {
		logger.Warn("gateway integration mode forced in production environment")
		return Integration()
	}
	if commerceCode == "" || apiKey == "" {
		logger.Warn("production gateway credentials missing, falling back to integration")
		return Integration()
	}
	return Production(commerceCode, apiKey)
}
