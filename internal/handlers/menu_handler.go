package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/reservation-api/internal/domain/menu"
	"github.com/BruksfildServices01/reservation-api/internal/dto"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/httpresp"
	menuuc "github.com/BruksfildServices01/reservation-api/internal/usecase/menu"
)

// ======================================================
// HANDLER
// ======================================================

type MenuHandler struct {
	list   *menuuc.ListMenus
	create *menuuc.CreateMenu
	delete *menuuc.DeleteMenu
}

func NewMenuHandler(
	list *menuuc.ListMenus,
	create *menuuc.CreateMenu,
	del *menuuc.DeleteMenu,
) *MenuHandler {
	return &MenuHandler{
		list:   list,
		create: create,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ListMenusQuery struct {
	Name     string `form:"name" binding:"omitempty,max=200"`
	MinPrice *int   `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice *int   `form:"maxPrice" binding:"omitempty,min=0"`
	Category string `form:"category" binding:"omitempty,menucategory"`
}

type CreateMenuRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Price       *int   `json:"price" binding:"required,min=0"`
	Category    string `json:"category" binding:"required,menucategory"`
	Description string `json:"description" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *MenuHandler) List(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	var q ListMenusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	menus, err := h.list.Execute(c.Request.Context(), actor, domain.Filter{
		Name:     q.Name,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Category: domain.Category(q.Category),
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.List(c, httpresp.MsgMenuList, dto.NewMenuList(menus))
}

// ======================================================
// CREATE
// ======================================================

func (h *MenuHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	m, err := h.create.Execute(c.Request.Context(), actor, menuuc.CreateMenuInput{
		Name:        req.Name,
		Price:       *req.Price,
		Category:    domain.Category(req.Category),
		Description: req.Description,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.Created(c, httpresp.MsgMenuCreated, dto.NewMenuDTO(m))
}

// ======================================================
// DELETE
// ======================================================

func (h *MenuHandler) Delete(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, httpresp.MsgMenuDeleted, nil)
}
