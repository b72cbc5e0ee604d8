package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_ledger/internal/core/ports/services"
	"github.com/SscSPs/backoffice_ledger/internal/dto"
	"github.com/SscSPs/backoffice_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// masterDataHandler handles the master data used by account determination.
type masterDataHandler struct {
	masterData portssvc.MasterDataSvcFacade
	resolver   portssvc.AccountResolverSvc
}

func registerMasterDataRoutes(rg *gin.RouterGroup, masterData portssvc.MasterDataSvcFacade, resolver portssvc.AccountResolverSvc) {
	h := &masterDataHandler{masterData: masterData, resolver: resolver}

	rg.GET("/company-defaults", h.getCompanyDefaults)
	rg.PUT("/company-defaults", h.setCompanyDefaults)
	rg.POST("/product-categories", h.saveProductCategory)
	rg.POST("/products", h.saveProduct)
	rg.POST("/third-party-types", h.saveThirdPartyType)
	rg.POST("/third-parties", h.saveThirdParty)
	rg.POST("/bank-accounts", h.saveBankAccount)
	rg.POST("/account-resolution", h.resolveAccount)
}

// saveMasterData binds req, calls save and answers 200 with the stored record.
func saveMasterData[Req any, Res any](c *gin.Context, action string, save func(c *gin.Context, workplaceID string, req Req, actor domain.Actor) (*Res, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param(workplaceParam)

	var req Req
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("workplace_id", workplaceID))
	res, err := save(c, workplaceID, req, actor)
	if err != nil {
		respondError(c, logger, err, action)
		return
	}
	logger.Info("Master data saved", slog.String("action", action))
	c.JSON(http.StatusOK, res)
}

// getCompanyDefaults godoc
// @Summary Get company default accounts
// @Tags master-data
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Success 200 {object} domain.CompanyDefaults
// @Failure 404 {object} map[string]string "No defaults configured"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/company-defaults [get]
func (h *masterDataHandler) getCompanyDefaults(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	defaults, err := h.masterData.GetCompanyDefaults(c.Request.Context(), c.Param(workplaceParam))
	if err != nil {
		respondError(c, logger, err, "retrieve company defaults")
		return
	}
	c.JSON(http.StatusOK, defaults)
}

// setCompanyDefaults godoc
// @Summary Set company default accounts
// @Tags master-data
// @Accept json
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Param   defaults body dto.CompanyDefaultsRequest true "Default accounts per purpose"
// @Success 200 {object} domain.CompanyDefaults
// @Failure 400 {object} map[string]string "Unknown or non-leaf account"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/company-defaults [put]
func (h *masterDataHandler) setCompanyDefaults(c *gin.Context) {
	saveMasterData(c, "set company defaults", func(c *gin.Context, wp string, req dto.CompanyDefaultsRequest, actor domain.Actor) (*domain.CompanyDefaults, error) {
		return h.masterData.SetCompanyDefaults(c.Request.Context(), wp, req, actor)
	})
}

// saveProductCategory godoc
// @Summary Create or update a product category
// @Tags master-data
// @Accept json
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Param   category body dto.ProductCategoryRequest true "Product category"
// @Success 200 {object} domain.ProductCategory
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/product-categories [post]
func (h *masterDataHandler) saveProductCategory(c *gin.Context) {
	saveMasterData(c, "save product category", func(c *gin.Context, wp string, req dto.ProductCategoryRequest, actor domain.Actor) (*domain.ProductCategory, error) {
		return h.masterData.SaveProductCategory(c.Request.Context(), wp, req, actor)
	})
}

// saveProduct godoc
// @Summary Create or update a product
// @Tags master-data
// @Accept json
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Param   product body dto.ProductRequest true "Product"
// @Success 200 {object} domain.Product
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/products [post]
func (h *masterDataHandler) saveProduct(c *gin.Context) {
	saveMasterData(c, "save product", func(c *gin.Context, wp string, req dto.ProductRequest, actor domain.Actor) (*domain.Product, error) {
		return h.masterData.SaveProduct(c.Request.Context(), wp, req, actor)
	})
}

// saveThirdPartyType godoc
// @Summary Create or update a third party type
// @Tags master-data
// @Accept json
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Param   type body dto.ThirdPartyTypeRequest true "Third party type"
// @Success 200 {object} domain.ThirdPartyType
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/third-party-types [post]
func (h *masterDataHandler) saveThirdPartyType(c *gin.Context) {
	saveMasterData(c, "save third party type", func(c *gin.Context, wp string, req dto.ThirdPartyTypeRequest, actor domain.Actor) (*domain.ThirdPartyType, error) {
		return h.masterData.SaveThirdPartyType(c.Request.Context(), wp, req, actor)
	})
}

// saveThirdParty godoc
// @Summary Create or update a customer or supplier
// @Tags master-data
// @Accept json
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Param   party body dto.ThirdPartyRequest true "Third party"
// @Success 200 {object} domain.ThirdParty
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/third-parties [post]
func (h *masterDataHandler) saveThirdParty(c *gin.Context) {
	saveMasterData(c, "save third party", func(c *gin.Context, wp string, req dto.ThirdPartyRequest, actor domain.Actor) (*domain.ThirdParty, error) {
		return h.masterData.SaveThirdParty(c.Request.Context(), wp, req, actor)
	})
}

// saveBankAccount godoc
// @Summary Create or update a bank account
// @Tags master-data
// @Accept json
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Param   bankAccount body dto.BankAccountRequest true "Bank account"
// @Success 200 {object} domain.BankAccount
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/bank-accounts [post]
func (h *masterDataHandler) saveBankAccount(c *gin.Context) {
	saveMasterData(c, "save bank account", func(c *gin.Context, wp string, req dto.BankAccountRequest, actor domain.Actor) (*domain.BankAccount, error) {
		return h.masterData.SaveBankAccount(c.Request.Context(), wp, req, actor)
	})
}

// resolveAccount godoc
// @Summary Resolve the account for a purpose
// @Description Walks override, entity, category and company default levels and reports the first hit
// @Tags master-data
// @Accept json
// @Produce json
// @Param   workplaceID path string true "Workplace ID"
// @Param   request body dto.ResolveAccountRequest true "Resolution input"
// @Success 200 {object} domain.AccountResolution
// @Failure 422 {object} map[string]string "No account configured for the purpose"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/account-resolution [post]
func (h *masterDataHandler) resolveAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResolveAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	res, err := h.resolver.ResolveAccount(c.Request.Context(), c.Param(workplaceParam), req)
	if err != nil {
		respondError(c, logger, err, "resolve account")
		return
	}
	c.JSON(http.StatusOK, res)
}
