package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearshop/internal/application/customer/usecases"
	"gearshop/internal/shared/logger"
	"gearshop/internal/shared/utils"
)

type CustomerHandler struct {
	createUseCase *usecases.CreateCustomerUseCase
	updateUseCase *usecases.UpdateCustomerUseCase
	getUseCase    *usecases.GetCustomerUseCase
	listUseCase   *usecases.ListCustomersUseCase
	loginUseCase  *usecases.LoginUseCase
	logger        logger.Interface
}

func NewCustomerHandler(
	createUC *usecases.CreateCustomerUseCase,
	updateUC *usecases.UpdateCustomerUseCase,
	getUC *usecases.GetCustomerUseCase,
	listUC *usecases.ListCustomersUseCase,
	loginUC *usecases.LoginUseCase,
	logger logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		loginUseCase:  loginUC,
		logger:        logger,
	}
}

type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateCustomerRequest struct {
	Name     string `json:"name" binding:"omitempty,max=255"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateCustomerCommand{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newCustomerResponse(result))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateCustomerCommand{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "customer updated", newCustomerResponse(result))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newCustomerResponse(result))
}

func (h *CustomerHandler) List(c *gin.Context) {
	results, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]*CustomerResponse, 0, len(results))
	for _, result := range results {
		items = append(items, newCustomerResponse(result))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *CustomerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"token":       result.Token,
		"customer_id": result.CustomerID,
	})
}
