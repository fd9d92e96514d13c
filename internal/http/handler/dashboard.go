package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/service"
)

// DashboardData answers the caller's portfolio counts and target progress.
func DashboardData(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.Data(c.UserContext(), callerID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(data)
	}
}

// IdleBusinesses pages the caller's businesses with no recent order, most idle first.
func IdleBusinesses(svc service.DashboardService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.IdleBusinesses(c.UserContext(), callerID(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func MonthlySales(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chart, err := svc.MonthlySales(c.UserContext(), callerID(c), text(c, "from_date"), text(c, "to_date"))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, chart)
	}
}

func TargetChart(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chart, err := svc.TargetChart(c.UserContext(), callerID(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, chart)
	}
}

func DailySales(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day, sales, err := svc.DailySales(c.UserContext(), callerID(c), text(c, "date"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "date": day, "data": sales})
	}
}

func DashboardStates(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		states, err := svc.States(c.UserContext(), callerID(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, states)
	}
}

func TeamLeaderStates(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		states, err := svc.TeamLeaderStates(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, states)
	}
}

func TargetAchievement(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := svc.TargetAchievement(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, report)
	}
}

func LastPartInquiries(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.LastPartInquiries(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, list)
	}
}

func FollowTypeChart(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chart, err := svc.FollowTypeChart(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, chart)
	}
}
