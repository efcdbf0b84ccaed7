package layers

import (
	"errors"
	"fmt"
	"net/url"

	"layersync/core/document"
	"layersync/core/logger"
	"layersync/core/storage"
	"layersync/core/utils"
	"layersync/feature/layers/models"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for view layers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the layers routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/layers")
	group.Get("/", h.HandleCatalog)
	group.Post("/load", h.HandleLoad)
	group.Post("/sync", h.HandleSyncAll)
	group.Post("/remap", h.HandleRemap)
	group.Post("/save", h.HandleSave)

	vl := group.Group("/:scene/:layer")
	vl.Get("/tree", h.HandleTree)
	vl.Get("/bases", h.HandleBases)
	vl.Post("/sync", h.HandleSyncViewLayer)
	vl.Put("/nodes/:index/flags", h.HandleSetFlag)
	vl.Post("/nodes/:index/activate", h.HandleActivate)
	vl.Post("/nodes/:index/isolate", h.HandleIsolate)
	vl.Post("/nodes/:index/select", h.HandleSelect)
	vl.Post("/bases/:object/show", h.HandleShowBase)
	vl.Post("/local/:viewport", h.HandleIsolateLocal)
}

// HandleCatalog lists the scenes of the loaded document.
// @Summary List Scenes
// @Description List the scenes and view layers of the loaded document.
// @Tags layers
// @Produce json
// @Success 200 {object} models.Catalog "Scenes"
// @Failure 503 {object} map[string]string "No document loaded"
// @Router /layers [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	catalog, err := h.service.Catalog()
	if err != nil {
		return h.fail(c, "Catalog failed", err)
	}
	return c.JSON(catalog)
}

// HandleLoad loads a document from the bucket.
// @Summary Load Document
// @Description Load a scene document from object storage, restore its stored view layer state and sync it.
// @Tags layers
// @Produce json
// @Param document query string false "Document name, defaults to the configured one"
// @Success 200 {object} models.SyncResult "Loaded"
// @Failure 400 {object} map[string]string "Invalid document"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /layers/load [post]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	// The service keeps the name after the request buffers are recycled.
	result, err := h.service.Load(c.Context(), fiberutils.CopyString(c.Query("document")))
	if err != nil {
		return h.fail(c, "Document load failed", err)
	}
	return c.JSON(result)
}

// HandleSyncAll resyncs every view layer.
// @Summary Sync All
// @Description Resync every view layer of every scene and refresh local collections.
// @Tags layers
// @Produce json
// @Success 200 {object} models.SyncResult "Synced"
// @Failure 409 {object} map[string]string "Resync suppressed"
// @Failure 503 {object} map[string]string "No document loaded"
// @Router /layers/sync [post]
func (h *Handler) HandleSyncAll(c *fiber.Ctx) error {
	result, err := h.service.SyncAll()
	if err != nil {
		return h.fail(c, "Sync failed", err)
	}
	return c.JSON(result)
}

// HandleRemap rebuilds every base index.
// @Summary Sync Remap
// @Description Drop and rebuild every base index, repairing duplicate bases, then resync.
// @Tags layers
// @Produce json
// @Success 200 {object} models.SyncResult "Synced"
// @Failure 409 {object} map[string]string "Resync suppressed"
// @Failure 503 {object} map[string]string "No document loaded"
// @Router /layers/remap [post]
func (h *Handler) HandleRemap(c *fiber.Ctx) error {
	result, err := h.service.Remap()
	if err != nil {
		return h.fail(c, "Remap failed", err)
	}
	return c.JSON(result)
}

// HandleSave persists the loaded document.
// @Summary Save Document
// @Description Write the loaded document back to object storage and its view layer state to the database.
// @Tags layers
// @Produce json
// @Success 200 {object} models.SaveResult "Saved"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "No document loaded"
// @Router /layers/save [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	result, err := h.service.Save(c.Context())
	if err != nil {
		return h.fail(c, "Save failed", err)
	}
	return c.JSON(result)
}

// HandleTree returns the layer tree of a view layer.
// @Summary Layer Tree
// @Description Get the layer node tree of a view layer with flags and runtime visibility.
// @Tags layers
// @Produce json
// @Param scene path string true "Scene name"
// @Param layer path string true "View layer name"
// @Success 200 {object} models.Node "Root node"
// @Failure 404 {object} map[string]string "Not found"
// @Router /layers/{scene}/{layer}/tree [get]
func (h *Handler) HandleTree(c *fiber.Ctx) error {
	tree, err := h.service.Tree(param(c, "scene"), param(c, "layer"))
	if err != nil {
		return h.fail(c, "Tree failed", err)
	}
	return c.JSON(tree)
}

// HandleBases lists the bases of a view layer.
// @Summary List Bases
// @Description List the bases of a view layer, optionally filtered and evaluated in a viewport.
// @Tags layers
// @Produce json
// @Param scene path string true "Scene name"
// @Param layer path string true "View layer name"
// @Param filter query string false "all, selected, visible, editable or mode"
// @Param viewport query string false "Viewport name"
// @Param mode query string false "Object mode for the mode filter (e.g. 'edit')"
// @Param type query string false "Object type for the mode filter (e.g. 'mesh')"
// @Success 200 {array} models.Base "Bases"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} map[string]string "Not found"
// @Router /layers/{scene}/{layer}/bases [get]
func (h *Handler) HandleBases(c *fiber.Ctx) error {
	bases, err := h.service.Bases(param(c, "scene"), param(c, "layer"), BaseQuery{
		Filter:   c.Query("filter"),
		Viewport: c.Query("viewport"),
		Mode:     c.Query("mode"),
		Type:     c.Query("type"),
	})
	if err != nil {
		return h.fail(c, "Base listing failed", err)
	}
	return c.JSON(bases)
}

// HandleSyncViewLayer resyncs one view layer.
// @Summary Sync View Layer
// @Description Resync one view layer against the scene graph.
// @Tags layers
// @Produce json
// @Param scene path string true "Scene name"
// @Param layer path string true "View layer name"
// @Success 200 {object} models.Node "Root node"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Resync suppressed"
// @Router /layers/{scene}/{layer}/sync [post]
func (h *Handler) HandleSyncViewLayer(c *fiber.Ctx) error {
	tree, err := h.service.SyncViewLayer(param(c, "scene"), param(c, "layer"))
	if err != nil {
		return h.fail(c, "View layer sync failed", err)
	}
	return c.JSON(tree)
}

// HandleSetFlag sets or clears a node flag.
// @Summary Set Node Flag
// @Description Set or clear excluded, hidden, holdout or indirect_only on a layer node and resync.
// @Tags layers
// @Accept json
// @Produce json
// @Param scene path string true "Scene name"
// @Param layer path string true "View layer name"
// @Param index path int true "Node index"
// @Param request body models.FlagRequest true "Flag and value"
// @Success 200 {object} models.Node "Node"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not found"
// @Router /layers/{scene}/{layer}/nodes/{index}/flags [put]
func (h *Handler) HandleSetFlag(c *fiber.Ctx) error {
	index, err := indexParam(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req models.FlagRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	value, err := utils.ToBool(req.Value)
	if err != nil {
		return badRequest(c, fmt.Errorf("value: %w", err))
	}

	node, err := h.service.SetNodeFlag(param(c, "scene"), param(c, "layer"), index, req.Flag, value)
	if err != nil {
		return h.fail(c, "Set node flag failed", err)
	}
	return c.JSON(node)
}

// HandleActivate makes a node active.
// @Summary Activate Node
// @Description Make a layer node the active one. Excluded nodes cannot be activated.
// @Tags layers
// @Produce json
// @Param scene path string true "Scene name"
// @Param layer path string true "View layer name"
// @Param index path int true "Node index"
// @Success 200 {object} models.Node "Node"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Node excluded"
// @Router /layers/{scene}/{layer}/nodes/{index}/activate [post]
func (h *Handler) HandleActivate(c *fiber.Ctx) error {
	index, err := indexParam(c)
	if err != nil {
		return badRequest(c, err)
	}
	node, err := h.service.Activate(param(c, "scene"), param(c, "layer"), index)
	if err != nil {
		return h.fail(c, "Activate failed", err)
	}
	return c.JSON(node)
}

// HandleIsolate isolates a node in the view layer.
// @Summary Isolate Node
// @Description Hide every other node of the view layer, or with extend toggle this one.
// @Tags layers
// @Accept json
// @Produce json
// @Param scene path string true "Scene name"
// @Param layer path string true "View layer name"
// @Param index path int true "Node index"
// @Param request body models.IsolateRequest false "Options"
// @Success 200 {object} models.Node "Root node"
// @Failure 404 {object} map[string]string "Not found"
// @Router /layers/{scene}/{layer}/nodes/{index}/isolate [post]
func (h *Handler) HandleIsolate(c *fiber.Ctx) error {
	index, err := indexParam(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req models.IsolateRequest
	if err := parseOptional(c, &req); err != nil {
		return badRequest(c, err)
	}
	tree, err := h.service.Isolate(param(c, "scene"), param(c, "layer"), index, req.Extend)
	if err != nil {
		return h.fail(c, "Isolate failed", err)
	}
	return c.JSON(tree)
}

// HandleSelect selects the objects of a node.
// @Summary Select Node Objects
// @Description Select, or deselect, the selectable bases of the objects in a layer node.
// @Tags layers
// @Accept json
// @Produce json
// @Param scene path string true "Scene name"
// @Param layer path string true "View layer name"
// @Param index path int true "Node index"
// @Param request body models.SelectRequest false "Options"
// @Success 200 {object} models.SelectResult "Result"
// @Failure 404 {object} map[string]string "Not found"
// @Router /layers/{scene}/{layer}/nodes/{index}/select [post]
func (h *Handler) HandleSelect(c *fiber.Ctx) error {
	index, err := indexParam(c)
	if err != nil {
		return badRequest(c, err)
	}
	var req models.SelectRequest
	if err := parseOptional(c, &req); err != nil {
		return badRequest(c, err)
	}
	result, err := h.service.SelectObjects(param(c, "scene"), param(c, "layer"), index, req.Deselect)
	if err != nil {
		return h.fail(c, "Select failed", err)
	}
	return c.JSON(result)
}

// HandleShowBase isolates one base.
// @Summary Show Base
// @Description Hide every other base and show this one, or with extend toggle its hide state.
// @Tags layers
// @Accept json
// @Produce json
// @Param scene path string true "Scene name"
// @Param layer path string true "View layer name"
// @Param object path string true "Object name"
// @Param request body models.IsolateRequest false "Options"
// @Success 200 {object} models.Base "Base"
// @Failure 404 {object} map[string]string "Not found"
// @Router /layers/{scene}/{layer}/bases/{object}/show [post]
func (h *Handler) HandleShowBase(c *fiber.Ctx) error {
	var req models.IsolateRequest
	if err := parseOptional(c, &req); err != nil {
		return badRequest(c, err)
	}
	base, err := h.service.ShowBase(param(c, "scene"), param(c, "layer"), param(c, "object"), req.Extend)
	if err != nil {
		return h.fail(c, "Show base failed", err)
	}
	return c.JSON(base)
}

// HandleIsolateLocal isolates a node in a viewport's local collections.
// @Summary Isolate Local Collection
// @Description Show a layer node in a viewport using local collections and return the bases visible there.
// @Tags layers
// @Accept json
// @Produce json
// @Param scene path string true "Scene name"
// @Param layer path string true "View layer name"
// @Param viewport path string true "Viewport name"
// @Param request body models.LocalRequest true "Node index and options"
// @Success 200 {array} models.Base "Visible bases"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not found"
// @Router /layers/{scene}/{layer}/local/{viewport} [post]
func (h *Handler) HandleIsolateLocal(c *fiber.Ctx) error {
	var req models.LocalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	index, err := utils.ToInt(req.Index)
	if err != nil {
		return badRequest(c, fmt.Errorf("index: %w", err))
	}

	bases, err := h.service.IsolateLocal(param(c, "scene"), param(c, "layer"), param(c, "viewport"), index, req.Extend)
	if err != nil {
		return h.fail(c, "Local isolate failed", err)
	}
	return c.JSON(bases)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusOf(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err), zap.Int("status", status))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrNotLoaded):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, ErrSceneNotFound),
		errors.Is(err, ErrViewLayerNotFound),
		errors.Is(err, ErrNodeNotFound),
		errors.Is(err, ErrBaseNotFound),
		errors.Is(err, ErrViewportNotFound),
		errors.Is(err, storage.ErrDocumentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidFilter),
		errors.Is(err, ErrInvalidFlag),
		errors.Is(err, ErrRootNode),
		errors.Is(err, ErrLocalCollectionsOff),
		errors.Is(err, document.ErrInvalid),
		errors.Is(err, document.ErrUnsupportedVersion):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotActivatable),
		errors.Is(err, document.ErrSuppressed):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// param returns the unescaped path parameter key.
func param(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func indexParam(c *fiber.Ctx) (int, error) {
	index, err := utils.ToInt(c.Params("index"))
	if err != nil {
		return 0, fmt.Errorf("index: %w", err)
	}
	return index, nil
}

// parseOptional parses the body into out when there is one.
func parseOptional(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}
