package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ghayaruae/crm-server/internal/http/middleware"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/service"
)

// envelope is the success body of non paginated endpoints.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(envelope{Success: true, Data: data})
}

func done(c *fiber.Ctx, message string, data any) error {
	return c.JSON(envelope{Success: true, Message: message, Data: data})
}

// sendPage writes a pagination envelope and records it.
func sendPage[T any](c *fiber.Ctx, page *pagination.Page[T]) error {
	pagination.RecordRequest(fiber.StatusOK, page.Page)
	return c.JSON(page)
}

func pageParams(c *fiber.Ctx, cfg pagination.Config) (pagination.Params, error) {
	return pagination.ParseParams(c.Query("limit"), c.Query("page"), cfg)
}

func sortOrder(c *fiber.Ctx) query.Direction {
	return query.ParseDirection(c.Query("sort_order"))
}

func callerID(c *fiber.Ctx) int64 {
	return middleware.SalesmanID(c)
}

func text(c *fiber.Ctx, key string) string {
	return strings.TrimSpace(c.Query(key))
}

// optionalID parses a numeric query parameter. Blank gives nil.
func optionalID(c *fiber.Ctx, key string) (*int64, error) {
	raw := text(c, key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, &service.InputError{Field: key, Message: "must be a positive integer"}
	}
	return &id, nil
}

// requiredID parses a numeric query parameter that must be present.
func requiredID(c *fiber.Ctx, key string) (int64, error) {
	id, err := optionalID(c, key)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, &service.InputError{Field: key, Message: "is required"}
	}
	return *id, nil
}

// bind decodes a JSON body into dst.
func bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return &service.InputError{Message: "malformed request body"}
	}
	return nil
}

// idBody decodes a JSON body holding a single positive id under key.
func idBody(c *fiber.Ctx, key string) (int64, error) {
	var body map[string]any
	if err := bind(c, &body); err != nil {
		return 0, err
	}
	var id int64
	switch v := body[key].(type) {
	case float64:
		id = int64(v)
	case string:
		id, _ = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	}
	if id <= 0 {
		return 0, &service.InputError{Field: key, Message: "is required"}
	}
	return id, nil
}
