package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/repository"
	"github.com/ghayaruae/crm-server/internal/service"
)

// ListBusinesses pages the caller's businesses.
func ListBusinesses(svc service.BusinessService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.List(c.UserContext(), callerID(c), sortOrder(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func BusinessInfo(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requiredID(c, "business_id")
		if err != nil {
			return fail(c, err)
		}
		info, err := svc.Info(c.UserContext(), callerID(c), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, info)
	}
}

// BusinessDashboard answers the eight order and credit aggregates of one
// business. A single failed aggregate fails the whole response.
func BusinessDashboard(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requiredID(c, "business_id")
		if err != nil {
			return fail(c, err)
		}
		dash, err := svc.Dashboard(c.UserContext(), callerID(c), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, dash)
	}
}

func BusinessOrders(svc service.BusinessService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.Orders(c.UserContext(), callerID(c), orderFilter(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func OrderInfo(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requiredID(c, "business_order_id")
		if err != nil {
			return fail(c, err)
		}
		info, err := svc.OrderInfo(c.UserContext(), callerID(c), id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"success":       true,
			"data":          info.Order,
			"items":         info.Items,
			"order_address": info.Address,
		})
	}
}

func OrderStatusOptions(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return ok(c, svc.StatusOptions())
	}
}

func orderFilter(c *fiber.Ctx) repository.OrderFilter {
	return repository.OrderFilter{
		BusinessName: text(c, "business_name"),
		Keyword:      text(c, "keyword"),
		Status:       text(c, "status"),
		FromDate:     text(c, "from_date"),
		ToDate:       text(c, "to_date"),
		Sort:         sortOrder(c),
	}
}
