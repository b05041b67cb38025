package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/marketplace-api/internal/httpx"
)

// CreateHandler godoc
// @Summary  Create an order with its items
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body CreateOrderRequest true "order"
// @Success  201 {object} Order
// @Failure  400 {object} httpx.HTTPError
// @Failure  500 {object} httpx.HTTPError
// @Router   /orders [post]
func CreateHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in CreateOrderRequest
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err, "Failed to create order")
			return
		}
		o, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			httpx.Fail(c, err, "Failed to create order")
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// ListByUserHandler godoc
// @Summary  List a user's orders
// @Tags     orders
// @Produce  json
// @Param    userId path string true "user id"
// @Success  200 {array} Order
// @Failure  500 {object} httpx.HTTPError
// @Router   /orders/user/{userId} [get]
func ListByUserHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListByUser(c.Request.Context(), c.Param("userId"))
		if err != nil {
			httpx.Fail(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// DeleteItemHandler godoc
// @Summary  Delete one item of an order
// @Tags     orders
// @Param    orderId path string true "order id"
// @Param    itemId  path string true "item id"
// @Success  204
// @Failure  404 {object} httpx.HTTPError
// @Failure  500 {object} httpx.HTTPError
// @Router   /orders/{orderId}/items/{itemId} [delete]
func DeleteItemHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteItem(c.Request.Context(), c.Param("orderId"), c.Param("itemId")); err != nil {
			httpx.Fail(c, err, "Failed to delete order item")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
