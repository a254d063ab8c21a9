package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/venuedesk/venuedesk-api/internal/application/service"
	"github.com/venuedesk/venuedesk-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// MenuPackageRequest represents the create/update menu package request body
type MenuPackageRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Type        string  `json:"type"`
	Price       float64 `json:"price" binding:"min=0"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// MenuItemUpsertRequest represents the create/update menu item request body
type MenuItemUpsertRequest struct {
	PackageID       *uuid.UUID `json:"package_id"`
	Name            string     `json:"name" binding:"required,min=1,max=255"`
	Category        string     `json:"category"`
	Price           float64    `json:"price" binding:"min=0"`
	AdditionalPrice float64    `json:"additional_price" binding:"min=0"`
	Active          *bool      `json:"active"`
}

// ListPackages handles listing menu packages
// @Summary List Menu Packages
// @Description Get all menu packages with pagination and search
// @Tags menus
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /menu-packages [get]
func (h *MenuHandler) ListPackages(c *gin.Context) {
	params := listParams(c)
	activeOnly := c.Query("active") == "true"

	result, err := h.menuService.ListMenuPackages(c.Request.Context(), params, c.Query("search"), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Menu packages retrieved successfully", result)
}

// GetPackage handles getting a menu package with its items
// @Summary Get Menu Package
// @Description Get a menu package by ID with its items
// @Tags menus
// @Security BearerAuth
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.APIResponse
// @Router /menu-packages/{id} [get]
func (h *MenuHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	pkg, err := h.menuService.GetMenuPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu package retrieved successfully", pkg)
}

// CreatePackage handles creating a menu package
// @Summary Create Menu Package
// @Description Add a menu package to the catalog
// @Tags menus
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body MenuPackageRequest true "Package data"
// @Success 201 {object} response.APIResponse
// @Router /menu-packages [post]
func (h *MenuHandler) CreatePackage(c *gin.Context) {
	var req MenuPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	pkg, err := h.menuService.CreateMenuPackage(c.Request.Context(), &service.CreateMenuPackageInput{
		Name:        req.Name,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu package created successfully", pkg)
}

// UpdatePackage handles updating a menu package
// @Summary Update Menu Package
// @Description Update a menu package in the catalog
// @Tags menus
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body MenuPackageRequest true "Package data"
// @Success 200 {object} response.APIResponse
// @Router /menu-packages/{id} [put]
func (h *MenuHandler) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	var req MenuPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	pkg, err := h.menuService.UpdateMenuPackage(c.Request.Context(), &service.UpdateMenuPackageInput{
		ID:          id,
		Name:        req.Name,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu package updated successfully", pkg)
}

// DeletePackage handles deleting a menu package
// @Summary Delete Menu Package
// @Description Delete a menu package from the catalog
// @Tags menus
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 204
// @Router /menu-packages/{id} [delete]
func (h *MenuHandler) DeletePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	if err := h.menuService.DeleteMenuPackage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListPackageItems handles listing the items of a package
// @Summary List Package Items
// @Description Get the dishes belonging to a menu package
// @Tags menus
// @Security BearerAuth
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.APIResponse
// @Router /menu-packages/{id}/items [get]
func (h *MenuHandler) ListPackageItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	items, err := h.menuService.ListPackageItems(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package items retrieved successfully", items)
}

// ListALaCarteItems handles listing a-la-carte items
// @Summary List A-La-Carte Items
// @Description Get dishes not attached to any package
// @Tags menus
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /menu-items [get]
func (h *MenuHandler) ListALaCarteItems(c *gin.Context) {
	params := listParams(c)

	result, err := h.menuService.ListALaCarteItems(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Menu items retrieved successfully", result)
}

// CreateItem handles creating a menu item
// @Summary Create Menu Item
// @Description Add a dish to a package or the a-la-carte list
// @Tags menus
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body MenuItemUpsertRequest true "Item data"
// @Success 201 {object} response.APIResponse
// @Router /menu-items [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req MenuItemUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), &service.CreateMenuItemInput{
		PackageID:       req.PackageID,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		AdditionalPrice: req.AdditionalPrice,
		Active:          active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// UpdateItem handles updating a menu item
// @Summary Update Menu Item
// @Description Update a dish
// @Tags menus
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body MenuItemUpsertRequest true "Item data"
// @Success 200 {object} response.APIResponse
// @Router /menu-items/{id} [put]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req MenuItemUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), &service.UpdateMenuItemInput{
		ID:              id,
		PackageID:       req.PackageID,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		AdditionalPrice: req.AdditionalPrice,
		Active:          active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// DeleteItem handles deleting a menu item
// @Summary Delete Menu Item
// @Description Delete a dish
// @Tags menus
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204
// @Router /menu-items/{id} [delete]
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
