package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/KeisukeTTTT/estate-management/internal/api/handlers"
	"github.com/KeisukeTTTT/estate-management/internal/api/middleware"
	"github.com/KeisukeTTTT/estate-management/internal/config"
	"github.com/KeisukeTTTT/estate-management/internal/services"
)

// Services bundles the per-entity services the router exposes.
type Services struct {
	Properties   services.IPropertyService
	Contractors  services.IContractorService
	Contracts    services.IContractService
	Transactions services.ITransactionService
	Inquiries    services.IInquiryService
}

// SetupRouter configures and returns the main Gin engine. ctx bounds the
// lifetime of background middleware housekeeping.
func SetupRouter(ctx context.Context, cfg *config.Config, svc Services, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	rateLimiter := middleware.NewRateLimiterMiddleware(ctx, cfg.RateLimitRefillRate, cfg.RateLimitBucketSize, logger)

	// Apply global middleware first (order matters)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())

	forms := handlers.NewFormHandler(svc.Properties, svc.Contractors, svc.Contracts, svc.Transactions, svc.Inquiries, logger)
	listings := handlers.NewListingHandler(svc.Properties, svc.Contractors, svc.Contracts, svc.Transactions, svc.Inquiries, logger)

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/properties", listings.ListProperties)
		dashboard.GET("/properties/new", listings.PropertyForm)
		dashboard.POST("/properties", forms.CreateProperty)

		dashboard.GET("/contractors", listings.ListContractors)
		dashboard.POST("/contractors", forms.CreateContractor)

		dashboard.GET("/contracts", listings.ListContracts)
		dashboard.GET("/contracts/new", listings.ContractForm)
		dashboard.POST("/contracts", forms.CreateContract)

		dashboard.GET("/transactions", listings.ListTransactions)
		dashboard.GET("/transactions/new", listings.TransactionForm)
		dashboard.POST("/transactions", forms.CreateTransaction)

		dashboard.GET("/inquiries", listings.ListInquiries)
		dashboard.GET("/inquiries/new", listings.InquiryForm)
		dashboard.POST("/inquiries", forms.CreateInquiry)
	}

	r.GET("/labels", listings.Labels)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return r
}
