package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ghayaruae/crm-server/internal/service"
)

// UploadDocument stores a multipart "file" against the business named by
// the "business_id" form field.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		businessID, err := strconv.ParseInt(strings.TrimSpace(c.FormValue("business_id")), 10, 64)
		if err != nil || businessID <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "business_id: is required")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), callerID(c), service.Upload{
			BusinessID:  businessID,
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
			Body:        f,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(envelope{Success: true, Message: "Document uploaded", Data: doc})
	}
}

// ListDocuments returns a business's documents with short lived download links.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requiredID(c, "business_id")
		if err != nil {
			return fail(c, err)
		}
		docs, err := svc.List(c.UserContext(), callerID(c), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, docs)
	}
}

// DownloadDocument streams the object through the API.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, body, err := svc.Open(c.UserContext(), callerID(c), text(c, "document_id"))
		if err != nil {
			return fail(c, err)
		}
		c.Attachment(doc.Filename)
		if doc.ContentType != "" {
			c.Set(fiber.HeaderContentType, doc.ContentType)
		}
		// fasthttp closes body once it is sent
		return c.SendStream(body, int(doc.Size))
	}
}

func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			DocumentID string `json:"document_id"`
		}
		if err := bind(c, &body); err != nil {
			return fail(c, err)
		}
		if err := svc.Delete(c.UserContext(), callerID(c), strings.TrimSpace(body.DocumentID)); err != nil {
			return fail(c, err)
		}
		return done(c, "Document deleted", nil)
	}
}
