package api

import (
	"github.com/gofiber/fiber/v2"
)

const (
	predictionReadyMessage     = "Ovulation prediction calculated"
	predictionNotEnoughMessage = "Not enough cycle data for prediction. At least 2 cycles are needed."
)

func (handler *Handler) GetOvulationPrediction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	prediction, err := handler.predictionService.PredictOvulation(c.UserContext(), user.ID)
	if err != nil {
		return respondServiceError(c, err, "failed to predict cycle")
	}
	handler.usage.Record("predict_cycle")

	message := predictionReadyMessage
	if prediction == nil {
		message = predictionNotEnoughMessage
	}
	return c.JSON(fiber.Map{
		"message":    message,
		"prediction": newPredictionResponse(prediction),
	})
}
