package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/predictor"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PredictRequest is the body accepted by the predict endpoint.
type PredictRequest struct {
	Line string `json:"line"`
}

// PredictResponse lists the top predictions, best first.
type PredictResponse struct {
	Predictions []predictor.Prediction `json:"predictions"`
}

// InfoResponse describes the model being served.
type InfoResponse struct {
	RunID      string   `json:"run_id,omitempty"`
	Categories []string `json:"categories"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleTest is the liveness probe kept for existing clients.
func (s *Server) handleTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"server": "works"})
}

func (s *Server) handleInfo(c *fiber.Ctx) error {
	return c.JSON(InfoResponse{
		RunID:      s.config.RunID,
		Categories: s.predictor.Registry().Names(),
	})
}

// handlePredict scores a line. The line comes from a JSON body
// ({"line": "..."}) or, failing that, the "line" query parameter.
// Query parameters:
//   - top_k (optional, default 3): number of predictions to return
func (s *Server) handlePredict(c *fiber.Ctx) error {
	var req PredictRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "invalid request body",
			})
		}
	}
	if req.Line == "" {
		req.Line = c.Query("line")
	}
	if req.Line == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "line is required",
		})
	}

	k := predictor.DefaultK
	if topK := c.Query("top_k"); topK != "" {
		parsed, err := strconv.Atoi(topK)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "top_k must be a positive integer",
			})
		}
		k = parsed
	}

	preds, err := s.predictor.Predict(req.Line, k)
	switch {
	case errors.Is(err, alphabet.ErrEmptyLine):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "line has no characters the model knows",
		})
	case err != nil:
		s.logger.Error("prediction failed", "line", req.Line, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "prediction failed",
		})
	}

	s.logger.Debug("predicted",
		"line", req.Line,
		"top", preds[0].Category,
		"score", preds[0].Score,
	)

	return c.JSON(PredictResponse{Predictions: preds})
}
