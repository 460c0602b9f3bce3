package search

import (
	"errors"
	"net/http"

	"mileage/pkg/querycodec"

	"github.com/gin-gonic/gin"
)

type MileageHandler struct {
	service *Service
}

func NewMileageHandler(s *Service) *MileageHandler {
	return &MileageHandler{
		service: s,
	}
}

func (h *MileageHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/api/search-mileage", h.SearchMileageHandler)
}

// SearchMileageHandler godoc
// @Summary      Search award availability
// @Description  Single-day award search across the given airports, with optional fee and direct-flight filters
// @Tags         mileage
// @Produce      json
// @Param        originAirport       query  string  true   "Comma-separated origin IATA codes"
// @Param        destinationAirport  query  string  true   "Comma-separated destination IATA codes"
// @Param        departureDate       query  string  true   "YYYY-MM-DD"
// @Param        minimumFees         query  number  false  "Keep entries with any cabin tax cost >= value"
// @Param        maximumFees         query  number  false  "Keep entries with any cabin tax cost <= value"
// @Param        onlyDirectFlights   query  bool    false  "Keep entries with any direct cabin"
// @Success      200  {object}  SearchResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/search-mileage [get]
func (h *MileageHandler) SearchMileageHandler(c *gin.Context) {
	query, err := querycodec.Decode(c.Request.URL.RawQuery)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          http.StatusBadRequest,
			ErrorMessages: []string{"query string is not valid URL encoding"},
		})
		return
	}

	entries, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Code: http.StatusOK,
		Data: entries,
	})
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{
			Code:          appErr.Status,
			ErrorMessages: appErr.Messages,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:          http.StatusInternalServerError,
		ErrorMessages: []string{genericFetchError},
	})
}
