package routes

import (
	"payment_gateway_client/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments      = "/payments"
	PathRecurring     = "/recurring"
	PathNotifications = "/notifications"
)

func addGatewayRoutes(rg *gin.RouterGroup, payment *handlers.PaymentHandler, recurring *handlers.RecurringHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/authorise", payment.Authorise)
		payments.POST("/authorise-recurring", payment.AuthoriseRecurring)
		payments.POST("/authorise-oneclick", payment.AuthoriseOneClick)
		payments.POST("/capture", payment.Capture)
		payments.POST("/refund", payment.Refund)
		payments.POST("/cancel", payment.Cancel)
		payments.POST("/cancel-or-refund", payment.CancelOrRefund)
	}

	stored := rg.Group(PathRecurring)
	{
		stored.GET("/:shopper_reference/details", recurring.ListStoredDetails)
		stored.DELETE("/:shopper_reference/details", recurring.DisableStoredDetails)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, notification *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.POST("", notification.Receive)
		notifications.GET("/:psp_reference", notification.ListByPSPReference)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
