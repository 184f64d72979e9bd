package catalog

import (
	"errors"
	"io"

	"catalog-admin/core/logger"
	"catalog-admin/core/middleware/actor"
	"catalog-admin/core/reconcile"
	"catalog-admin/core/utils"
	"catalog-admin/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ItemResponse is returned by create and update.
type ItemResponse struct {
	Item   *models.Item      `json:"item"`
	Report *reconcile.Report `json:"report"`
}

// ReorderRequest carries the full ordered list of item ids.
type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// Handler handles HTTP requests for catalog items.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Put("/order", h.HandleReorder)
	group.Post("/images", h.HandleUploadImage)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Patch("/:id", h.HandleUpdateScalar)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns a page of items.
// @Summary List Items
// @Description List items with their variants and options, newest first unless sorted by rank.
// @Tags items
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param category_id query string false "Category filter"
// @Param search query string false "Case-insensitive title search"
// @Param since query string false "Created since: today, week, month or year"
// @Param sort query string false "Use 'rank' to order by sort_order"
// @Success 200 {object} models.ItemPage
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	q := models.ListQuery{
		Page:       utils.ToInt(c.Query("page")),
		Limit:      utils.ToInt(c.Query("limit")),
		CategoryID: c.Query("category_id"),
		Search:     c.Query("search"),
		Since:      c.Query("since"),
		SortByRank: c.Query("sort") == "rank",
	}

	page, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(page)
}

// HandleGet returns a single item tree.
// @Summary Get Item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	item, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

// HandleCreate creates an item with its variants and options.
// @Summary Create Item
// @Description The acting user becomes the owner. Child failures are listed in the report.
// @Tags items
// @Accept json
// @Produce json
// @Param item body models.CreateRequest true "Item"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /items [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	actorID := actor.FromCtx(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "acting user is required"})
	}

	var req models.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	item, report, err := h.service.Create(c.UserContext(), actorID, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ItemResponse{Item: item, Report: report})
}

// HandleUpdate updates root fields and reconciles variants when they are supplied.
// @Summary Update Item
// @Description Omitting "variants" leaves the subtree untouched. Within a variant, omitting
// @Description "options" leaves its options untouched while an empty list deletes them.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body models.UpdateRequest true "Desired item"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req models.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	item, report, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ItemResponse{Item: item, Report: report})
}

// HandleUpdateScalar updates root fields only.
// @Summary Update Item Fields
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param fields body models.ScalarFields true "Fields"
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id} [patch]
func (h *Handler) HandleUpdateScalar(c *fiber.Ctx) error {
	var fields models.ScalarFields
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, err)
	}

	item, err := h.service.UpdateScalar(c.UserContext(), c.Params("id"), fields)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

// HandleDelete deletes an item, its subtree and its image.
// @Summary Delete Item
// @Tags items
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleReorder persists a new item ranking.
// @Summary Reorder Items
// @Tags items
// @Accept json
// @Produce json
// @Param order body ReorderRequest true "Ordered item ids"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/order [put]
func (h *Handler) HandleReorder(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	changes, err := h.service.Reorder(c.UserContext(), req.IDs)
	if err != nil {
		return h.fail(c, err)
	}
	if changes == nil {
		changes = []reconcile.RankChange{}
	}
	return c.JSON(fiber.Map{"changes": changes})
}

// HandleUploadImage uploads an item or variant image.
// @Summary Upload Image
// @Tags items
// @Accept multipart/form-data
// @Produce json
// @Param folder query string false "products or variants" default(products)
// @Param file formData file true "Image (JPEG, PNG or WebP)"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /items/images [post]
func (h *Handler) HandleUploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, err)
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, err)
	}

	url, err := h.service.UploadImage(c.UserContext(), c.Query("folder", FolderProducts), fh.Filename, data)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRequest(h.service.logger, c)

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		status = fiber.StatusBadRequest
	default:
		l.Error("Catalog request failed", zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
