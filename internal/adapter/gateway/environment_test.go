package gateway

import "testing"

func TestSelectEnvironment(t *testing.T) {
	cases := []struct {
		name             string
		env              string
		commerceCode     string
		apiKey           string
		forceIntegration bool
		wantName         string
		wantCommerce     string
	}{
		{
			name:         "integration by default",
			env:          "integration",
			wantName:     "integration",
			wantCommerce: IntegrationCommerceCode,
		},
		{
			name:         "production with credentials",
			env:          "production",
			commerceCode: "597012345678",
			apiKey:       "merchant-key",
			wantName:     "production",
			wantCommerce: "597012345678",
		},
		{
			name:             "forced integration wins over production",
			env:              "production",
			commerceCode:     "597012345678",
			apiKey:           "merchant-key",
			forceIntegration: true,
			wantName:         "integration",
			wantCommerce:     IntegrationCommerceCode,
		},
		{
			name:         "production without api key falls back",
			env:          "production",
			commerceCode: "597012345678",
			wantName:     "integration",
			wantCommerce: IntegrationCommerceCode,
		},
		{
			name:     "production without any credentials falls back",
			env:      "production",
			wantName: "integration",
			wantCommerce: IntegrationCommerceCode,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := SelectEnvironment(tc.env, tc.commerceCode, tc.apiKey, tc.forceIntegration, testLogger())
			if env.Name != tc.wantName {
				t.Fatalf("expected environment %q, got %q", tc.wantName, env.Name)
			}
			if env.CommerceCode != tc.wantCommerce {
				t.Fatalf("expected commerce code %q, got %q", tc.wantCommerce, env.CommerceCode)
			}
			if env.Name == "integration" && env.BaseURL != IntegrationBaseURL {
				t.Fatalf("unexpected base url %q", env.BaseURL)
			}
			if env.Name == "production" && env.BaseURL != ProductionBaseURL {
				t.Fatalf("unexpected base url %q", env.BaseURL)
			}
		})
	}
}
