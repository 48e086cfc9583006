package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/game"
	"github.com/App-Genius/topline-platform/internal/handler"
	"github.com/App-Genius/topline-platform/internal/service"
)

type stubDashboardService struct {
	response dto.DashboardResponse
	err      error
	calls    int
}

func (s *stubDashboardService) GetDashboard(_ context.Context) (dto.DashboardResponse, error) {
	s.calls++
	if s.err != nil {
		return dto.DashboardResponse{}, s.err
	}
	return s.response, nil
}

func TestDashboardHandler_Success(t *testing.T) {
	svc := &stubDashboardService{response: dto.DashboardResponse{
		Game:         game.State{Status: game.StatusWinning, PercentComplete: 53},
		YearlyTarget: 500000,
		AverageCheck: 53,
	}}

	app := fiber.New()
	group := app.Group("/api/v1/game", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		c.Locals("user_role", "SERVER")
		return c.Next()
	})
	handler.NewDashboardHandler(svc, zerolog.Nop()).Register(group)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/game/dashboard", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool                  `json:"success"`
		Message string                `json:"message"`
		Data    dto.DashboardResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()

	require.True(t, payload.Success)
	require.Equal(t, "dashboard retrieved", payload.Message)
	require.Equal(t, game.StatusWinning, payload.Data.Game.Status)
	require.Equal(t, 1, svc.calls)
}

func TestDashboardHandler_ServiceFailure(t *testing.T) {
	svc := &stubDashboardService{err: context.DeadlineExceeded}

	app := fiber.New()
	handler.NewDashboardHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1/game"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/game/dashboard", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

var _ service.DashboardService = (*stubDashboardService)(nil)
