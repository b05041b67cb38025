package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/marketplace-api/internal/httpx"
)

// RegisterHandler godoc
// @Summary  Register a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body RegisterRequest true "user"
// @Success  201 {object} User
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Failure  500 {object} httpx.HTTPError
// @Router   /users [post]
func RegisterHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in RegisterRequest
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err, "Failed to create user")
			return
		}
		u, err := svc.Register(c.Request.Context(), in.Name, in.Email)
		if err != nil {
			httpx.Fail(c, err, "Failed to create user")
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// ListHandler godoc
// @Summary  List users
// @Tags     users
// @Produce  json
// @Success  200 {array} User
// @Failure  500 {object} httpx.HTTPError
// @Router   /users [get]
func ListHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err, "Failed to fetch users")
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GetByEmailHandler godoc
// @Summary  Get a user by email
// @Tags     users
// @Produce  json
// @Param    email path string true "email"
// @Success  200 {object} User
// @Failure  404 {object} httpx.HTTPError
// @Failure  500 {object} httpx.HTTPError
// @Router   /users/email/{email} [get]
func GetByEmailHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetByEmail(c.Request.Context(), c.Param("email"))
		if err != nil {
			httpx.Fail(c, err, "Failed to fetch user")
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// UpdateHandler godoc
// @Summary  Partially update a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id   path string            true "user id"
// @Param    body body UpdateRequest true "fields to change"
// @Success  200 {object} User
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Failure  500 {object} httpx.HTTPError
// @Router   /users/{id} [put]
func UpdateHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in UpdateRequest
		if err := httpx.BindJSON(c, &in); err != nil {
			httpx.Fail(c, err, "Failed to update user")
			return
		}
		u, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			httpx.Fail(c, err, "Failed to update user")
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
