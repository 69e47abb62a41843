package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arjunkmr/hoteldesk/logger"
)

// GetStaffIDFromContext extracts the authenticated staff ID from the Gin
// context. The auth middleware stores it as a string under "sub".
func GetStaffIDFromContext(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get("sub")
	if !exists {
		logger.ErrorLogger.Error("Staff ID not found in context.")
		return uuid.Nil, fmt.Errorf("authentication required: staff ID not found")
	}

	idStr, ok := raw.(string)
	if !ok {
		logger.ErrorLogger.Errorf("Staff ID in context is not a string, actual type: %T", raw)
		return uuid.Nil, fmt.Errorf("internal server error: invalid staff ID format in context")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to parse staff ID string '%s' to UUID: %v", idStr, err)
		return uuid.Nil, fmt.Errorf("internal server error: invalid staff ID format")
	}
	return id, nil
}
