// Package handler serves company fundamentals over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"vnstock_api/internal/api"
	"vnstock_api/internal/feature/company/domain/entity"
	"vnstock_api/internal/platform/http/response"
	"vnstock_api/internal/shared/clock"
)

const companyNotFoundMsg = "No company data found"

// CompanyUsecase defines the lookup the handler depends on.
type CompanyUsecase interface {
	GetCompanyInfo(ctx context.Context, symbol string) (entity.CompanyProfile, error)
}

// CompanyHandler handles company requests.
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetCompanyInfo handles GET /api/company/:symbol.
func (h *CompanyHandler) GetCompanyInfo(c *gin.Context, symbol api.Symbol) {
	p, err := h.uc.GetCompanyInfo(c.Request.Context(), symbol)
	if err != nil {
		response.Error(c, err, companyNotFoundMsg)
		return
	}

	c.JSON(http.StatusOK, api.CompanyResponse{
		Symbol: p.Symbol,
		CompanyInfo: api.CompanyInfo{
			MarketCap: p.Info.MarketCap,
			PeRatio:   p.Info.PERatio,
			PbRatio:   p.Info.PBRatio,
			Eps:       p.Info.EPS,
			Roe:       p.Info.ROE,
		},
		Timestamp: p.GeneratedAt.Format(clock.TimestampLayout),
	})
}
