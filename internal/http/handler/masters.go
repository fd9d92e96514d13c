package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/service"
)

const (
	targetIDKey      = "business_salesman_target_id"
	followupIDKey    = "business_salesman_followup_id"
	partRequestIDKey = "inventory_part_request_id"
)

// SaveTarget creates a target, or updates it when the body carries its id.
// The caller is recorded as the assigner.
func SaveTarget(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.TargetInput
		if err := bind(c, &in); err != nil {
			return fail(c, err)
		}
		id, err := svc.SaveTarget(c.UserContext(), callerID(c), in)
		if err != nil {
			return fail(c, err)
		}
		return done(c, "Target saved", fiber.Map{targetIDKey: id})
	}
}

func ListTargets(svc service.MasterService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		salesmanID, err := optionalID(c, "business_salesman_id")
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.ListTargets(c.UserContext(), salesmanID, sortOrder(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func GetTarget(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requiredID(c, targetIDKey)
		if err != nil {
			return fail(c, err)
		}
		t, err := svc.GetTarget(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, t)
	}
}

func DeleteTarget(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idBody(c, targetIDKey)
		if err != nil {
			return fail(c, err)
		}
		if err := svc.DeleteTarget(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return done(c, "Target deleted", nil)
	}
}

func SalesmanOptions(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.SalesmanOptions(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, list)
	}
}

func SaveFollowup(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.FollowupInput
		if err := bind(c, &in); err != nil {
			return fail(c, err)
		}
		id, err := svc.SaveFollowup(c.UserContext(), in)
		if err != nil {
			return fail(c, err)
		}
		return done(c, "Followup saved", fiber.Map{followupIDKey: id})
	}
}

// ListFollowups pages followups; keyword matches the salesman name.
func ListFollowups(svc service.MasterService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.ListFollowups(c.UserContext(), text(c, "keyword"), sortOrder(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func GetFollowup(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requiredID(c, followupIDKey)
		if err != nil {
			return fail(c, err)
		}
		f, err := svc.GetFollowup(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, f)
	}
}

func DeleteFollowup(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idBody(c, followupIDKey)
		if err != nil {
			return fail(c, err)
		}
		if err := svc.DeleteFollowup(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return done(c, "Followup deleted", nil)
	}
}

func SavePartRequest(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.PartRequestInput
		if err := bind(c, &in); err != nil {
			return fail(c, err)
		}
		id, err := svc.SavePartRequest(c.UserContext(), callerID(c), in)
		if err != nil {
			return fail(c, err)
		}
		return done(c, "Part inquiry saved", fiber.Map{partRequestIDKey: id})
	}
}

func ListPartRequests(svc service.MasterService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.ListPartRequests(c.UserContext(), text(c, "keyword"), sortOrder(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}

func GetPartRequest(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requiredID(c, partRequestIDKey)
		if err != nil {
			return fail(c, err)
		}
		pr, err := svc.GetPartRequest(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, pr)
	}
}

func DeletePartRequest(svc service.MasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idBody(c, partRequestIDKey)
		if err != nil {
			return fail(c, err)
		}
		if err := svc.DeletePartRequest(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return done(c, "Part inquiry deleted", nil)
	}
}
