// File: homely/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Quote endpoints
	CreateQuote gin.HandlerFunc

	// Catalog endpoints
	ListServices  gin.HandlerFunc
	GetService    gin.HandlerFunc
	CreateService gin.HandlerFunc
	UpdateService gin.HandlerFunc
	DeleteService gin.HandlerFunc

	// Availability endpoints
	GetCalendar gin.HandlerFunc
	GetSlots    gin.HandlerFunc
}
