package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gearshop/internal/application/ticket/usecases"
	"gearshop/internal/shared/constants"
	"gearshop/internal/shared/logger"
	"gearshop/internal/shared/utils"
)

type TicketHandler struct {
	createUseCase          *usecases.CreateTicketUseCase
	getUseCase             *usecases.GetTicketUseCase
	listUseCase            *usecases.ListTicketsUseCase
	listByCustomerUseCase  *usecases.ListCustomerTicketsUseCase
	updateUseCase          *usecases.UpdateTicketUseCase
	assignMechanicUseCase  *usecases.AssignMechanicUseCase
	removeMechanicUseCase  *usecases.RemoveMechanicUseCase
	updateMechanicsUseCase *usecases.UpdateMechanicsUseCase
	addInventoryUseCase    *usecases.AddInventoryUseCase
	logger                 logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	getUC *usecases.GetTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	listByCustomerUC *usecases.ListCustomerTicketsUseCase,
	updateUC *usecases.UpdateTicketUseCase,
	assignMechanicUC *usecases.AssignMechanicUseCase,
	removeMechanicUC *usecases.RemoveMechanicUseCase,
	updateMechanicsUC *usecases.UpdateMechanicsUseCase,
	addInventoryUC *usecases.AddInventoryUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase:          createUC,
		getUseCase:             getUC,
		listUseCase:            listUC,
		listByCustomerUseCase:  listByCustomerUC,
		updateUseCase:          updateUC,
		assignMechanicUseCase:  assignMechanicUC,
		removeMechanicUseCase:  removeMechanicUC,
		updateMechanicsUseCase: updateMechanicsUC,
		addInventoryUseCase:    addInventoryUC,
		logger:                 logger,
	}
}

type CreateTicketRequest struct {
	VIN                string `json:"VIN" validate:"required,max=255"`
	ServiceDate        string `json:"service_date" validate:"required"`
	ServiceDescription string `json:"service_description" validate:"required,max=1000"`
	CustomerID         uint   `json:"customer_id" validate:"required"`
}

type UpdateTicketRequest struct {
	VIN                string `json:"VIN" validate:"omitempty,max=255"`
	ServiceDate        string `json:"service_date"`
	ServiceDescription string `json:"service_description" validate:"omitempty,max=1000"`
}

type UpdateMechanicsRequest struct {
	AddMechanicIDs    []uint `json:"add_mechanic_ids"`
	RemoveMechanicIDs []uint `json:"remove_mechanic_ids"`
}

type AddInventoryItemRequest struct {
	InventoryID uint `json:"inventory_id" validate:"required"`
	Quantity    *int `json:"quantity" validate:"omitempty,gt=0"`
}

type AddInventoryRequest struct {
	Items []AddInventoryItemRequest `json:"add_inventory_items" validate:"required,min=1,dive"`
}

func parseServiceDate(raw string) (time.Time, bool) {
	date, err := time.Parse(serviceDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// authenticatedCustomerID reads the customer id stored by the auth
// middleware.
func authenticatedCustomerID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyCustomerID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok && id != 0
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	serviceDate, ok := parseServiceDate(req.ServiceDate)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "service_date must be formatted as YYYY-MM-DD")
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		VIN:                req.VIN,
		ServiceDate:        serviceDate,
		ServiceDescription: req.ServiceDescription,
		CustomerID:         req.CustomerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newTicketResponse(result))
}

func (h *TicketHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newTicketResponse(result))
}

func (h *TicketHandler) List(c *gin.Context) {
	results, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]*TicketResponse, 0, len(results))
	for _, result := range results {
		items = append(items, newTicketResponse(result))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// MyTickets returns the tickets owned by the authenticated customer.
func (h *TicketHandler) MyTickets(c *gin.Context) {
	customerID, ok := authenticatedCustomerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	results, err := h.listByCustomerUseCase.Execute(c.Request.Context(), customerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]*TicketResponse, 0, len(results))
	for _, result := range results {
		items = append(items, newTicketResponse(result))
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *TicketHandler) Update(c *gin.Context) {
	customerID, ok := authenticatedCustomerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:           id,
		CustomerID:         customerID,
		VIN:                req.VIN,
		ServiceDescription: req.ServiceDescription,
	}
	if req.ServiceDate != "" {
		serviceDate, ok := parseServiceDate(req.ServiceDate)
		if !ok {
			utils.ErrorResponse(c, http.StatusBadRequest, "service_date must be formatted as YYYY-MM-DD")
			return
		}
		cmd.ServiceDate = serviceDate
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", newTicketResponse(result))
}

func (h *TicketHandler) AssignMechanic(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	mechanicID, err := utils.ParseIDParam(c, "mechanic_id", "mechanic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignMechanicUseCase.Execute(c.Request.Context(), usecases.AssignMechanicCommand{
		TicketID:   ticketID,
		MechanicID: mechanicID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "mechanic assigned to ticket"
	if result.AlreadyAssigned {
		message = "mechanic is already assigned to this ticket"
	}
	utils.SuccessResponse(c, http.StatusOK, message, newTicketResponse(result.Ticket))
}

func (h *TicketHandler) RemoveMechanic(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	mechanicID, err := utils.ParseIDParam(c, "mechanic_id", "mechanic")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.removeMechanicUseCase.Execute(c.Request.Context(), usecases.RemoveMechanicCommand{
		TicketID:   ticketID,
		MechanicID: mechanicID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "mechanic removed from ticket", newTicketResponse(result))
}

func (h *TicketHandler) UpdateMechanics(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMechanicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateMechanicsUseCase.Execute(c.Request.Context(), usecases.UpdateMechanicsCommand{
		TicketID:  ticketID,
		AddIDs:    req.AddMechanicIDs,
		RemoveIDs: req.RemoveMechanicIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket mechanics updated", newTicketResponse(result))
}

func (h *TicketHandler) AddInventory(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	lines := make([]usecases.InventoryLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		lines = append(lines, usecases.InventoryLineInput{
			InventoryID: item.InventoryID,
			Quantity:    quantity,
		})
	}

	result, err := h.addInventoryUseCase.Execute(c.Request.Context(), usecases.AddInventoryCommand{
		TicketID: ticketID,
		Lines:    lines,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "inventory attached to ticket", gin.H{
		"ticket_id":               result.TicketID,
		"added_inventory_ids":     result.AddedInventoryIDs,
		"duplicate_inventory_ids": result.DuplicateInventoryIDs,
		"requested_count":         result.RequestedCount,
		"added_count":             result.AddedCount,
		"duplicate_count":         result.DuplicateCount,
	})
}
