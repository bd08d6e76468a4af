package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KeisukeTTTT/estate-management/internal/models"
	"github.com/KeisukeTTTT/estate-management/internal/services"
)

// ListingHandler serves the dashboard's read projections and form selector options.
type ListingHandler struct {
	properties   services.IPropertyService
	contractors  services.IContractorService
	contracts    services.IContractService
	transactions services.ITransactionService
	inquiries    services.IInquiryService
	logger       *zap.Logger
}

func NewListingHandler(
	properties services.IPropertyService,
	contractors services.IContractorService,
	contracts services.IContractService,
	transactions services.ITransactionService,
	inquiries services.IInquiryService,
	logger *zap.Logger,
) *ListingHandler {
	return &ListingHandler{
		properties:   properties,
		contractors:  contractors,
		contracts:    contracts,
		transactions: transactions,
		inquiries:    inquiries,
		logger:       logger,
	}
}

func (h *ListingHandler) fail(c *gin.Context, what string, err error) {
	h.logger.Error("failed to load "+what, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load " + what})
}

// GET /dashboard/properties
func (h *ListingHandler) ListProperties(c *gin.Context) {
	rows, err := h.properties.ListProperties(c.Request.Context())
	if err != nil {
		h.fail(c, "properties", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": rows})
}

// GET /dashboard/contractors
func (h *ListingHandler) ListContractors(c *gin.Context) {
	rows, err := h.contractors.ListContractors(c.Request.Context())
	if err != nil {
		h.fail(c, "contractors", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contractors": rows})
}

// GET /dashboard/contracts
func (h *ListingHandler) ListContracts(c *gin.Context) {
	rows, err := h.contracts.ListContracts(c.Request.Context())
	if err != nil {
		h.fail(c, "contracts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": rows})
}

// GET /dashboard/transactions
func (h *ListingHandler) ListTransactions(c *gin.Context) {
	rows, err := h.transactions.ListTransactions(c.Request.Context())
	if err != nil {
		h.fail(c, "transactions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": rows})
}

// GET /dashboard/inquiries
func (h *ListingHandler) ListInquiries(c *gin.Context) {
	rows, err := h.inquiries.ListInquiries(c.Request.Context())
	if err != nil {
		h.fail(c, "inquiries", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": rows})
}

// GET /dashboard/contracts/new
func (h *ListingHandler) ContractForm(c *gin.Context) {
	ctx := c.Request.Context()
	contractors, err := h.contractors.ContractorOptions(ctx)
	if err != nil {
		h.fail(c, "contract form options", err)
		return
	}
	rooms, err := h.properties.RoomOptions(ctx)
	if err != nil {
		h.fail(c, "contract form options", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contractors": contractors,
		"rooms":       rooms,
		"statuses":    models.Labels().ContractStatuses,
	})
}

// GET /dashboard/transactions/new
func (h *ListingHandler) TransactionForm(c *gin.Context) {
	contracts, err := h.contracts.CurrentContracts(c.Request.Context())
	if err != nil {
		h.fail(c, "transaction form options", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contracts": contracts,
		"types":     models.Labels().TransactionTypes,
	})
}

// GET /dashboard/inquiries/new
func (h *ListingHandler) InquiryForm(c *gin.Context) {
	contractors, err := h.contractors.ContractorOptions(c.Request.Context())
	if err != nil {
		h.fail(c, "inquiry form options", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contractors": contractors})
}

// GET /dashboard/properties/new
func (h *ListingHandler) PropertyForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": models.Labels().PropertyTypes})
}

// GET /labels
func (h *ListingHandler) Labels(c *gin.Context) {
	c.JSON(http.StatusOK, models.Labels())
}
