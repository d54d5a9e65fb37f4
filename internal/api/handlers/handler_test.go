package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/Rakifeller/idea-approval/configs"
	"github.com/Rakifeller/idea-approval/internal/api/middleware"
	"github.com/Rakifeller/idea-approval/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testAdminPassword = "hunter2"

type testEnv struct {
	app        *fiber.App
	posts      *memPostRepo
	content    *memContentRepo
	ideas      *memIdeaRepo
	dispatcher *fakeDispatcher
}

// newTestEnv wires the real services over in-memory repositories, behind the
// same routes and auth middleware the server registers.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{AdminPassword: testAdminPassword, SecretKey: "sekrit"}

	env := &testEnv{
		posts:      &memPostRepo{},
		content:    &memContentRepo{},
		ideas:      &memIdeaRepo{},
		dispatcher: &fakeDispatcher{},
	}

	scheduleService := service.NewScheduleService(env.posts, env.content, env.dispatcher)
	contentService := service.NewContentService(env.content, env.posts)
	ideaService := service.NewIdeaService(env.ideas, env.dispatcher)
	authService := service.NewAuthService(cfg)

	app := fiber.New()
	authMiddleware := middleware.NewAuthMiddleware(cfg)

	auth := NewAuthHandler(authService)
	app.Post("/login", auth.Login)

	api := app.Group("/")
	api.Use(authMiddleware.AuthMiddleware())

	content := NewContentHandler(contentService)
	api.Get("/approved-content", content.ListReadyContent)

	schedule := NewScheduleHandler(scheduleService)
	api.Get("/schedule-post", schedule.ListScheduledPosts)
	api.Post("/schedule-post", schedule.CreateScheduledPost)
	api.Delete("/schedule-post/:id", schedule.DeleteScheduledPost)

	idea := NewIdeaHandler(ideaService, nil)
	api.Get("/ideas", idea.ListIdeas)
	api.Post("/approve-idea", idea.ApproveIdea)
	api.Post("/reject-idea", idea.RejectIdea)
	api.Post("/assign-influencer", idea.AssignInfluencer)

	env.app = app
	return env
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}
