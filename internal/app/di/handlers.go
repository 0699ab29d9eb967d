package di

import (
	companyhandler "vnstock_api/internal/feature/company/transport/handler"
	companyusecase "vnstock_api/internal/feature/company/usecase"
	markethandler "vnstock_api/internal/feature/market/transport/handler"
	marketusecase "vnstock_api/internal/feature/market/usecase"
	priceshandler "vnstock_api/internal/feature/prices/transport/handler"
	pricesusecase "vnstock_api/internal/feature/prices/usecase"
	"vnstock_api/internal/platform/externalapi/vnstock"
	"vnstock_api/internal/shared/clock"
)

// Handlers groups the feature handlers served by the router.
type Handlers struct {
	Prices  *priceshandler.PricesHandler
	Market  *markethandler.MarketHandler
	Company *companyhandler.CompanyHandler
}

// NewHandlers wires every feature usecase to the same provider client and clock.
func NewHandlers(market *vnstock.VnstockMarket, clk clock.Clock) Handlers {
	return Handlers{
		Prices:  priceshandler.NewPricesHandler(pricesusecase.NewPricesUsecase(market, clk)),
		Market:  markethandler.NewMarketHandler(marketusecase.NewMarketUsecase(market, clk)),
		Company: companyhandler.NewCompanyHandler(companyusecase.NewCompanyUsecase(market, clk)),
	}
}
