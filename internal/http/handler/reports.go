package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/repository"
	"github.com/ghayaruae/crm-server/internal/service"
)

// BusinessOrdersReport pages the caller's orders together with their items.
func BusinessOrdersReport(svc service.ReportService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.BusinessOrders(c.UserContext(), callerID(c), orderFilter(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func BusinessAllOrdersReport(svc service.ReportService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.BusinessAllOrders(c.UserContext(), callerID(c), orderFilter(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func TargetReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		salesmanID, err := optionalID(c, "business_salesman_id")
		if err != nil {
			return fail(c, err)
		}
		rows, err := svc.Targets(c.UserContext(), repository.TargetReportFilter{
			FromDate:   text(c, "from_date"),
			ToDate:     text(c, "to_date"),
			SalesmanID: salesmanID,
		})
		if err != nil {
			return fail(c, err)
		}
		return ok(c, rows)
	}
}

func FollowupReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		salesmanID, err := optionalID(c, "business_salesman_id")
		if err != nil {
			return fail(c, err)
		}
		rows, err := svc.Followups(c.UserContext(), repository.FollowupReportFilter{
			FromDate:   text(c, "from_date"),
			ToDate:     text(c, "to_date"),
			SalesmanID: salesmanID,
		})
		if err != nil {
			return fail(c, err)
		}
		return ok(c, rows)
	}
}

func SalesmanReport(svc service.ReportService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.Salesmen(c.UserContext(), text(c, "keyword"), sortOrder(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

// SalesmanOrderReport pages orders across every salesman. status takes a
// comma separated list of codes.
func SalesmanOrderReport(svc service.ReportService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.SalesmanOrders(c.UserContext(), repository.SalesmanOrderFilter{
			Keyword:      text(c, "keyword"),
			SalesmanName: text(c, "salesman_name"),
			Statuses:     text(c, "status"),
			FromDate:     text(c, "from_date"),
			ToDate:       text(c, "to_date"),
			Sort:         sortOrder(c),
		}, p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func AssignedBusinessReport(svc service.ReportService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.AssignedBusinesses(c.UserContext(), repository.AssignedFilter{
			Status:  text(c, "status"),
			Keyword: text(c, "keyword"),
			Sort:    sortOrder(c),
		}, p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func CrossParts(svc service.ReportService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.CrossParts(c.UserContext(), text(c, "part_number"), text(c, "SUP_ID"), sortOrder(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func SupplierBrands(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.Suppliers(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, list)
	}
}

func InactiveBusinesses(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.InactiveBusinesses(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, list)
	}
}
