package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	AmendNotes(c *ginext.Context)
	BookingStats(c *ginext.Context)
	SchemaInfo(c *ginext.Context)
	MigrateSchema(c *ginext.Context)
	RepairSchema(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authn, approver ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		bookings := api.Group("/bookings", authn)
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListBookings)
			bookings.GET("/stats", h.BookingStats)
			bookings.GET("/:id", h.GetBooking)
			bookings.POST("/:id/approve", approver, h.ApproveBooking)
			bookings.POST("/:id/reject", approver, h.RejectBooking)
			bookings.PATCH("/:id/notes", approver, h.AmendNotes)
		}

		api.GET("/schema", authn, h.SchemaInfo)

		admin := api.Group("/admin", authn, approver)
		{
			admin.POST("/schema/migrate", h.MigrateSchema)
			admin.POST("/schema/repair", h.RepairSchema)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
