package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearshop/internal/application/inventory/usecases"
	"gearshop/internal/shared/logger"
	"gearshop/internal/shared/utils"
)

type InventoryHandler struct {
	createUseCase *usecases.CreateItemUseCase
	updateUseCase *usecases.UpdateItemUseCase
	deleteUseCase *usecases.DeleteItemUseCase
	getUseCase    *usecases.GetItemUseCase
	listUseCase   *usecases.ListItemsUseCase
	logger        logger.Interface
}

func NewInventoryHandler(
	createUC *usecases.CreateItemUseCase,
	updateUC *usecases.UpdateItemUseCase,
	deleteUC *usecases.DeleteItemUseCase,
	getUC *usecases.GetItemUseCase,
	listUC *usecases.ListItemsUseCase,
	logger logger.Interface,
) *InventoryHandler {
	return &InventoryHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		logger:        logger,
	}
}

type CreateItemRequest struct {
	Name  string   `json:"name" binding:"required,max=255"`
	Price *float64 `json:"price" binding:"required,gte=0"`
}

type UpdateItemRequest struct {
	Name  string   `json:"name" binding:"omitempty,max=255"`
	Price *float64 `json:"price" binding:"omitempty,gte=0"`
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateItemCommand{
		Name:  req.Name,
		Price: *req.Price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newItemResponse(result))
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "inventory item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateItemCommand{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "inventory item updated", newItemResponse(result))
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "inventory item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "inventory item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newItemResponse(result))
}

// List returns a page of items when both page and per_page are valid
// positive integers, otherwise the full set.
func (h *InventoryHandler) List(c *gin.Context) {
	pagination, paginated := utils.ParseOptionalPagination(c)

	cmd := usecases.ListItemsCommand{}
	if paginated {
		cmd.Page = pagination.Page
		cmd.PageSize = pagination.PageSize
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]*ItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, newItemResponse(item))
	}

	if result.Paginated {
		utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}
