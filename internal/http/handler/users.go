package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/service"
)

// Login godoc
// @Summary Authenticate a salesman
// @Tags Users
// @Accept json
// @Produce json
// @Param body body model.LoginInput true "credentials"
// @Success 200 {object} envelope
// @Failure 401 {object} errorPayload
// @Router /Users/Login [post]
func Login(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.LoginInput
		if err := bind(c, &in); err != nil {
			return fail(c, err)
		}
		res, err := svc.Login(c.UserContext(), in)
		if err != nil {
			return fail(c, err)
		}
		return done(c, "Login successful", res)
	}
}

func PrivilegeCatalog(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.PrivilegeCatalog(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, list)
	}
}

// UpdatePermissions replaces the privileges granted to a salesman.
func UpdatePermissions(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.PermissionsInput
		if err := bind(c, &in); err != nil {
			return fail(c, err)
		}
		if err := svc.UpdatePermissions(c.UserContext(), in); err != nil {
			return fail(c, err)
		}
		return done(c, "Permissions updated", nil)
	}
}

func SavePrivilege(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.PrivilegeInput
		if err := bind(c, &in); err != nil {
			return fail(c, err)
		}
		id, err := svc.SavePrivilege(c.UserContext(), in)
		if err != nil {
			return fail(c, err)
		}
		return done(c, "Privilege saved", fiber.Map{"salesman_privilage_id": id})
	}
}

func ListPrivileges(svc service.UserService, cfg pagination.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pageParams(c, cfg)
		if err != nil {
			return fail(c, err)
		}
		page, err := svc.ListPrivileges(c.UserContext(), sortOrder(c), p)
		if err != nil {
			return fail(c, err)
		}
		return sendPage(c, page)
	}
}
