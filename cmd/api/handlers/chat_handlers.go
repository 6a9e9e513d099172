package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flowmate/cmd/api/dto"
	"flowmate/engine"
	"flowmate/session"
)

// StartChatSessionHandler godoc
// @Summary      Open a chat session
// @Description  Creates a new widget conversation seeded with the welcome message.
// @Tags         chat
// @Produce      json
// @Success      201  {object}  dto.StartSessionResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /chat/sessions [post]
func StartChatSessionHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := eng.StartSession(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "session_create_failed"})
			return
		}
		c.JSON(http.StatusCreated, dto.StartSessionResponseDTO{Session: sess})
	}
}

// SendChatMessageHandler godoc
// @Summary      Send a chat message
// @Description  Appends the visitor message and returns the bot reply. The generative path is used when available and silently falls back to the rule engine.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "session id"
// @Param        body  body      dto.SendMessageRequestDTO  true  "message"
// @Success      200   {object}  dto.SendMessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /chat/sessions/{id}/messages [post]
func SendChatMessageHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SendMessageRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		msg, err := eng.ProduceReply(c.Request.Context(), c.Param("id"), req.Message)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "session_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "chat_failed"})
			return
		}
		c.JSON(http.StatusOK, dto.SendMessageResponseDTO{Message: msg})
	}
}

// DispatchQuickActionHandler godoc
// @Summary      Execute a quick action
// @Description  Runs a quick action clicked in the widget (calculator, booking, contact, service info) and returns the resulting bot message.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "session id"
// @Param        body  body      dto.DispatchActionRequestDTO  true  "action"
// @Success      200   {object}  dto.SendMessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /chat/sessions/{id}/actions [post]
func DispatchQuickActionHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.DispatchActionRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		msg, err := eng.Dispatch(c.Request.Context(), c.Param("id"), req.Action, req.Data)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "session_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "chat_failed"})
			return
		}
		c.JSON(http.StatusOK, dto.SendMessageResponseDTO{Message: msg})
	}
}

// GetChatSessionHandler godoc
// @Summary      Get a chat transcript
// @Tags         chat
// @Produce      json
// @Param        id  path  string  true  "session id"
// @Success      200  {object}  dto.SessionResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /chat/sessions/{id} [get]
func GetChatSessionHandler(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := eng.Session(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "session_not_found"})
			return
		}
		c.JSON(http.StatusOK, dto.SessionResponseDTO{Session: sess})
	}
}
