package handler

import (
	"net/http"

	"github.com/StormyDevil/azure-communication-services-solution/internal/response"
)

// HomeHandler serves basic root, health and ping endpoints.
type HomeHandler struct {
	acsConfigured bool
}

// NewHomeHandler returns a new HomeHandler. acsConfigured reports whether a
// Communication Services connection string was resolved at startup.
func NewHomeHandler(acsConfigured bool) *HomeHandler {
	return &HomeHandler{acsConfigured: acsConfigured}
}

// Index godoc
// @Summary     Welcome endpoint
// @Description Simple root endpoint that returns a welcome message.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	payload := response.WelcomePayload{
		Message: "Welcome to the Azure Communication Services gateway",
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// Health godoc
// @Summary     Health check
// @Description Returns a basic status payload to indicate the API is running.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	payload := response.HealthPayload{
		Status:        "ok",
		ACSConfigured: h.acsConfigured,
	}

	response.RespondJSON(w, http.StatusOK, payload)
}
