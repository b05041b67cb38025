// Package router holds the route table. Handlers own all request logic.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/MikeMC777/marketplace-api/internal/catalog"
	_ "github.com/MikeMC777/marketplace-api/internal/docs"
	"github.com/MikeMC777/marketplace-api/internal/httpx"
	"github.com/MikeMC777/marketplace-api/internal/order"
	"github.com/MikeMC777/marketplace-api/internal/user"
)

type Deps struct {
	Users   *user.Service
	Orders  *order.Service
	Catalog catalog.Source
	Health  gin.HandlerFunc // optional
	Log     *zap.Logger
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(d.Log), httpx.Recovery(), httpx.CORS())

	// Users
	r.POST("/users", user.RegisterHandler(d.Users))
	r.GET("/users", user.ListHandler(d.Users))
	r.GET("/users/email/:email", user.GetByEmailHandler(d.Users))
	r.PUT("/users/:id", user.UpdateHandler(d.Users))

	// Orders
	r.POST("/orders", order.CreateHandler(d.Orders))
	r.GET("/orders/user/:userId", order.ListByUserHandler(d.Orders))
	r.DELETE("/orders/:orderId/items/:itemId", order.DeleteItemHandler(d.Orders))

	// Secondary API proxies
	r.GET("/catalog/products", catalog.ProductsHandler(d.Catalog))
	r.GET("/catalog/products/:id", catalog.ProductHandler(d.Catalog))
	r.GET("/dist/address/:cep", catalog.AddressHandler(d.Catalog))

	if d.Health != nil {
		r.GET("/healthz", d.Health)
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}
