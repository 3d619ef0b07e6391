package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/server/http/dto"
)

// pathIndex parses a non-negative integer path parameter.
func pathIndex(c *gin.Context, name string) (int, bool) {
	index, err := strconv.Atoi(c.Param(name))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	progression := model.StatusProgression()
	steps := make([]string, 0, len(progression))
	for _, status := range progression {
		steps = append(steps, string(status))
	}
	return dto.OrderResponse{
		Order:      order,
		StatusStep: order.Status.Ordinal(),
		Steps:      steps,
	}
}
