package controllers

import (
	"context"
	"time"

	"virtual-healthcare/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

var validate = validator.New()

var credentialService *services.CredentialService

// Init wires the controllers to the credential service built in main.
func Init(credSvc *services.CredentialService) {
	credentialService = credSvc
}

// requestContext bounds every persistence call behind a handler.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 5*time.Second)
}
