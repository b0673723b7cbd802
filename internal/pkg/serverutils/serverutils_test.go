package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Kind string `validate:"required,oneof=topic custom"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Kind: "topic"}))

	err := ValidateRequest(sampleRequest{Kind: "other"})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, StatusOf(err))
	assert.Contains(t, err.Error(), "Kind must be one of [topic custom]")
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/missing", func(c *fiber.Ctx) error { return NewNotFoundError("Session not found") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db exploded") })

	cases := []struct {
		path    string
		code    int
		message string
	}{
		{"/missing", 404, "Session not found"},
		{"/boom", 500, "Internal server error"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.code, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var res BaseResponse[any]
		require.NoError(t, json.Unmarshal(body, &res))
		assert.False(t, res.Success)
		assert.Equal(t, tc.message, res.Message)
	}
}
