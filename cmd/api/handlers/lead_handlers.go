package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"flowmate/cmd/api/dto"
	"flowmate/eventbus"
	"flowmate/events"
	"flowmate/logger"
	"flowmate/models"
	"flowmate/repositories"
)

// CreateLeadHandler godoc
// @Summary      Capture a lead
// @Description  Persists a contact-form or assessment-booking submission and publishes a lead.captured event.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateLeadRequestDTO  true  "lead"
// @Success      201   {object}  dto.CreateLeadResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /leads [post]
func CreateLeadHandler(leads *repositories.LeadRepository, bus eventbus.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateLeadRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		lead := models.Lead{
			Name:          req.Name,
			Email:         req.Email,
			Company:       req.Company,
			Message:       req.Message,
			Source:        req.Source,
			ChatSessionID: req.ChatSessionID,
			CreatedAt:     time.Now().UTC(),
		}

		if leads != nil {
			saved, err := leads.Insert(c.Request.Context(), lead)
			if err != nil {
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "lead_save_failed"})
				return
			}
			lead = saved
		}

		evt := events.NewLeadCaptured(lead.ID.Hex(), string(lead.Source), lead.Email, lead.ChatSessionID)
		if err := bus.Publish(c.Request.Context(), events.TopicLeadEvents, evt); err != nil {
			// 이벤트 발행 실패는 리드 접수 자체를 실패시키지 않는다.
			logger.ErrorWithFields("lead event publish failed", logger.Fields{"lead_id": lead.ID.Hex(), "error": err.Error()})
		}

		c.JSON(http.StatusCreated, dto.CreateLeadResponseDTO{Lead: lead})
	}
}

// ListLeadsHandler godoc
// @Summary      Recent leads
// @Description  Newest-first list of captured leads for the back office.
// @Tags         leads
// @Produce      json
// @Param        limit  query     int  false  "max results, default 50"
// @Success      200    {object}  dto.ListLeadsResponseDTO
// @Failure      503    {object}  dto.ErrorResponseDTO
// @Router       /leads [get]
func ListLeadsHandler(leads *repositories.LeadRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if leads == nil {
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "lead_store_not_configured"})
			return
		}

		limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 50
		}

		out, err := leads.ListRecent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "lead_list_failed"})
			return
		}
		c.JSON(http.StatusOK, dto.ListLeadsResponseDTO{Leads: out})
	}
}
