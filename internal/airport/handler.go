package airport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service *Service
}

func NewAirportHandler(s *Service) *AirportHandler {
	return &AirportHandler{service: s}
}

func (h *AirportHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/api/airports", h.LookupHandler)
}

// LookupHandler godoc
// @Summary      Look up airports by name
// @Tags         airports
// @Produce      json
// @Param        q    query     string  false  "Case-insensitive substring of the airport name"
// @Success      200  {array}   Airport
// @Router       /api/airports [get]
func (h *AirportHandler) LookupHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Lookup(c.Query("q")))
}
