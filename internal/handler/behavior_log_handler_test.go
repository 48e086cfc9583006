package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/handler"
	"github.com/App-Genius/topline-platform/internal/service"
)

type stubBehaviorLogService struct {
	created   dto.BehaviorLogResponse
	createErr error
	lastActor service.Actor
	deleteErr error
}

func (s *stubBehaviorLogService) Create(_ context.Context, actor service.Actor, _ dto.BehaviorLogCreateRequest) (dto.BehaviorLogResponse, error) {
	s.lastActor = actor
	return s.created, s.createErr
}

func (s *stubBehaviorLogService) List(_ context.Context, _ service.Actor, _ dto.BehaviorLogListRequest) (dto.BehaviorLogListResponse, error) {
	return dto.BehaviorLogListResponse{}, nil
}

func (s *stubBehaviorLogService) Verify(_ context.Context, _ service.Actor, _ uint) (dto.BehaviorLogResponse, error) {
	return dto.BehaviorLogResponse{}, nil
}

func (s *stubBehaviorLogService) Delete(_ context.Context, _ service.Actor, _ uint) error {
	return s.deleteErr
}

func newBehaviorLogApp(svc service.BehaviorLogService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/behavior-logs", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		c.Locals("user_role", "SERVER")
		return c.Next()
	})
	handler.NewBehaviorLogHandler(svc, zerolog.Nop()).Register(group)
	return app
}

func TestBehaviorLogHandler_Create(t *testing.T) {
	svc := &stubBehaviorLogService{created: dto.BehaviorLogResponse{ID: 1, ActorID: 7, Points: 5}}
	app := newBehaviorLogApp(svc)

	body := strings.NewReader(`{"behavior_id": 10, "behavior_name": "table touch", "points": 5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/behavior-logs/", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, uint(7), svc.lastActor.ID)
	require.Equal(t, "SERVER", svc.lastActor.Role)

	var payload struct {
		Success bool                    `json:"success"`
		Data    dto.BehaviorLogResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()
	require.True(t, payload.Success)
	require.Equal(t, uint(1), payload.Data.ID)
}

func TestBehaviorLogHandler_DeleteForbiddenSurfacesReason(t *testing.T) {
	svc := &stubBehaviorLogService{deleteErr: &service.PermissionError{Reason: "verified logs are immutable"}}
	app := newBehaviorLogApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/behavior-logs/3", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	resp.Body.Close()
	require.False(t, payload.Success)
	require.Equal(t, "verified logs are immutable", payload.Message)
}

func TestBehaviorLogHandler_CreateRejectsBadBody(t *testing.T) {
	app := newBehaviorLogApp(&stubBehaviorLogService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/behavior-logs/", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

var _ service.BehaviorLogService = (*stubBehaviorLogService)(nil)
