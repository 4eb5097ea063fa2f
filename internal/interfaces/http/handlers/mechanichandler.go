package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearshop/internal/application/mechanic/usecases"
	"gearshop/internal/shared/logger"
	"gearshop/internal/shared/utils"
)

type MechanicHandler struct {
	createUseCase *usecases.CreateMechanicUseCase
	updateUseCase *usecases.UpdateMechanicUseCase
	deleteUseCase *usecases.DeleteMechanicUseCase
	getUseCase    *usecases.GetMechanicUseCase
	listUseCase   *usecases.ListMechanicsUseCase
	logger        logger.Interface
}

func NewMechanicHandler(
	createUC *usecases.CreateMechanicUseCase,
	updateUC *usecases.UpdateMechanicUseCase,
	deleteUC *usecases.DeleteMechanicUseCase,
	getUC *usecases.GetMechanicUseCase,
	listUC *usecases.ListMechanicsUseCase,
	logger logger.Interface,
) *MechanicHandler {
	return &MechanicHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		logger:        logger,
	}
}

type CreateMechanicRequest struct {
	Name   string  `json:"name" binding:"required,max=255"`
	Email  string  `json:"email" binding:"required,email"`
	Phone  string  `json:"phone" binding:"required"`
	Salary float64 `json:"salary" binding:"gte=0"`
}

type UpdateMechanicRequest struct {
	Name   string   `json:"name" binding:"omitempty,max=255"`
	Email  string   `json:"email" binding:"omitempty,email"`
	Phone  string   `json:"phone"`
	Salary *float64 `json:"salary" binding:"omitempty,gte=0"`
}

func (h *MechanicHandler) Create(c *gin.Context) {
	var req CreateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateMechanicCommand{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Salary: req.Salary,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newMechanicResponse(result))
}

func (h *MechanicHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "mechanic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateMechanicCommand{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Salary: req.Salary,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "mechanic updated", newMechanicResponse(result))
}

func (h *MechanicHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "mechanic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "mechanic deleted", nil)
}

func (h *MechanicHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "mechanic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newMechanicResponse(result))
}

func (h *MechanicHandler) List(c *gin.Context) {
	results, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]*MechanicResponse, 0, len(results))
	for _, result := range results {
		items = append(items, newMechanicResponse(result))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}
