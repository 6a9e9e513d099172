package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowmate/catalog"
	"flowmate/cmd/api/dto"
	"flowmate/config"
	"flowmate/savings"
)

// ListServicesHandler godoc
// @Summary      Service catalog
// @Description  Read-only list of the six service categories with pricing and turnaround.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  models.ServiceInfo
// @Router       /services [get]
func ListServicesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.All())
	}
}

// EstimateSavingsHandler godoc
// @Summary      ROI calculator
// @Description  Standalone time-savings estimate backing the calculator page. Uses the same formula as the chatbot's calculate_savings action.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body      dto.EstimateRequestDTO  true  "calculator inputs"
// @Success      200   {object}  dto.EstimateResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /calculator/estimate [post]
func EstimateSavingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.EstimateRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		refPrice := config.GetConfig().Chat.ReferencePackagePrice
		if refPrice <= 0 {
			refPrice = 499
		}
		est := savings.Calculate(savings.Input{
			TasksPerWeek:          req.TasksPerWeek,
			MinutesPerTask:        req.MinutesPerTask,
			HourlyRate:            req.HourlyRate,
			Coverage:              req.Coverage,
			Efficiency:            req.Efficiency,
			ReferencePackagePrice: refPrice,
		})
		c.JSON(http.StatusOK, dto.EstimateResponseDTO{Estimate: est})
	}
}
