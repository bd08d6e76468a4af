package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KeisukeTTTT/estate-management/internal/pipeline"
	"github.com/KeisukeTTTT/estate-management/internal/services"
	"github.com/KeisukeTTTT/estate-management/internal/validation"
)

const maxFormMemory = 1 << 20

// FormHandler accepts the dashboard's create forms and runs them through the mutation pipeline.
type FormHandler struct {
	properties   services.IPropertyService
	contractors  services.IContractorService
	contracts    services.IContractService
	transactions services.ITransactionService
	inquiries    services.IInquiryService
	logger       *zap.Logger
}

func NewFormHandler(
	properties services.IPropertyService,
	contractors services.IContractorService,
	contracts services.IContractService,
	transactions services.ITransactionService,
	inquiries services.IInquiryService,
	logger *zap.Logger,
) *FormHandler {
	return &FormHandler{
		properties:   properties,
		contractors:  contractors,
		contracts:    contracts,
		transactions: transactions,
		inquiries:    inquiries,
		logger:       logger,
	}
}

// POST /dashboard/properties
func (h *FormHandler) CreateProperty(c *gin.Context) {
	h.submit(c, h.properties.CreateProperty)
}

// POST /dashboard/contractors
func (h *FormHandler) CreateContractor(c *gin.Context) {
	h.submit(c, h.contractors.CreateContractor)
}

// POST /dashboard/contracts
func (h *FormHandler) CreateContract(c *gin.Context) {
	h.submit(c, h.contracts.CreateContract)
}

// POST /dashboard/transactions
func (h *FormHandler) CreateTransaction(c *gin.Context) {
	h.submit(c, h.transactions.CreateTransaction)
}

// POST /dashboard/inquiries
func (h *FormHandler) CreateInquiry(c *gin.Context) {
	h.submit(c, h.inquiries.CreateInquiry)
}

func (h *FormHandler) submit(c *gin.Context, create func(context.Context, validation.Raw) pipeline.Outcome) {
	raw, err := readForm(c)
	if err != nil {
		h.logger.Debug("unreadable form body", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form submission."})
		return
	}
	respondOutcome(c, create(c.Request.Context(), raw))
}

func readForm(c *gin.Context) (validation.Raw, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, err
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return validation.FromForm(c.Request.PostForm), nil
}
