// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/prometheus/client_golang/prometheus"

	"vnstock_api/internal/app/config"
	"vnstock_api/internal/platform/externalapi/vnstock"
	infrahttp "vnstock_api/internal/platform/http"
)

// NewMarket creates a fully configured VnstockMarket with an instrumented HTTP client.
// reg may be nil to skip outbound metrics.
func NewMarket(cfg config.Config, reg prometheus.Registerer) *vnstock.VnstockMarket {
	vcfg := vnstock.Config{
		BaseURL: cfg.VnstockBaseURL,
		Timeout: cfg.VnstockTimeout,
	}
	httpClient := infrahttp.NewHTTPClient(vcfg.Timeout, reg)
	return vnstock.NewVnstockMarket(vcfg, httpClient)
}
