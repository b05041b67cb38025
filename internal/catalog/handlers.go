package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/marketplace-api/internal/httpx"
)

// Source is what the proxy routes need from the secondary API.
type Source interface {
	Products(ctx context.Context) (*Payload, error)
	Product(ctx context.Context, id string) (*Payload, error)
	AddressByCEP(ctx context.Context, cep string) (*Payload, error)
}

// ProductsHandler godoc
// @Summary  List catalog products (proxied)
// @Tags     catalog
// @Produce  json
// @Success  200 {array} object
// @Failure  500 {object} httpx.HTTPError
// @Router   /catalog/products [get]
func ProductsHandler(src Source) gin.HandlerFunc {
	return proxy("Failed to fetch products", func(c *gin.Context) (*Payload, error) {
		return src.Products(c.Request.Context())
	})
}

// ProductHandler godoc
// @Summary  Get a catalog product (proxied)
// @Tags     catalog
// @Produce  json
// @Param    id path string true "product id"
// @Success  200 {object} object
// @Failure  500 {object} httpx.HTTPError
// @Router   /catalog/products/{id} [get]
func ProductHandler(src Source) gin.HandlerFunc {
	return proxy("Failed to fetch product", func(c *gin.Context) (*Payload, error) {
		return src.Product(c.Request.Context(), c.Param("id"))
	})
}

// AddressHandler godoc
// @Summary  Look up an address by CEP (proxied)
// @Tags     catalog
// @Produce  json
// @Param    cep path string true "postal code"
// @Success  200 {object} object
// @Failure  500 {object} httpx.HTTPError
// @Router   /dist/address/{cep} [get]
func AddressHandler(src Source) gin.HandlerFunc {
	return proxy("Failed to fetch address", func(c *gin.Context) (*Payload, error) {
		return src.AddressByCEP(c.Request.Context(), c.Param("cep"))
	})
}

func proxy(msg string, call func(c *gin.Context) (*Payload, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := call(c)
		if err != nil {
			httpx.Fail(c, err, msg)
			return
		}
		ct := p.ContentType
		if p.JSON() || ct == "" {
			ct = "application/json; charset=utf-8"
		}
		c.Data(http.StatusOK, ct, p.Body)
	}
}
