package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	OrderHandler   *OrderHTTP
	CartHandler    *CartHTTP
	CatalogHandler *CatalogHTTP
	AuthHandler    *AuthHTTP
	SearchHandler  *SearchHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := &AuthMiddleware{JWTSecret: d.JWTSecret}

	e.POST("/signup", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)

	e.GET("/categories", d.CatalogHandler.GetCategories)
	e.GET("/menu-items", d.CatalogHandler.GetMenuItems)
	e.GET("/menu-items/:food_id", d.CatalogHandler.GetMenuItem)
	if d.SearchHandler != nil {
		e.GET("/menu-items/search", d.SearchHandler.Search)
	}

	admin := e.Group("/admin", authMW.RequireAdmin)
	admin.POST("/categories", d.CatalogHandler.CreateCategory)
	admin.POST("/menu-items", d.CatalogHandler.CreateMenuItem)
	admin.PUT("/menu-items/:food_id", d.CatalogHandler.UpdateMenuItem)
	admin.DELETE("/menu-items/:food_id", d.CatalogHandler.DeleteMenuItem)
	admin.PATCH("/orders/:order_id/status", d.OrderHandler.SetOrderStatus)

	e.POST("/cart", d.CartHandler.AddToCart)
	e.GET("/cart/:user_id", d.CartHandler.GetCart)
	e.PUT("/cart/:cart_id", d.CartHandler.UpdateCartItem)
	e.DELETE("/cart/:cart_id", d.CartHandler.DeleteCartItem)

	e.POST("/orders", d.OrderHandler.PlaceOrder)
	e.GET("/orders/:order_id/status", d.OrderHandler.GetOrderStatus)
	e.GET("/orders/:order_id/items", d.OrderHandler.GetOrderItems)
	e.GET("/orders/user/:user_id", d.OrderHandler.ListOrders)

	e.POST("/points/redeem", d.OrderHandler.RedeemPoints)
}
