package handlers

import (
	customerUC "gearshop/internal/application/customer/usecases"
	inventoryUC "gearshop/internal/application/inventory/usecases"
	mechanicUC "gearshop/internal/application/mechanic/usecases"
	ticketUC "gearshop/internal/application/ticket/usecases"
)

const serviceDateLayout = "2006-01-02"

type CustomerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func newCustomerResponse(r *customerUC.CustomerResult) *CustomerResponse {
	return &CustomerResponse{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

type MechanicResponse struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Salary float64 `json:"salary"`
}

func newMechanicResponse(r *mechanicUC.MechanicResult) *MechanicResponse {
	return &MechanicResponse{
		ID:     r.ID,
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Salary: r.Salary,
	}
}

type ItemResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func newItemResponse(r *inventoryUC.ItemResult) *ItemResponse {
	return &ItemResponse{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
	}
}

// TicketMechanicResponse is the trimmed mechanic shape nested in ticket
// responses: no salary or contact fields.
type TicketMechanicResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TicketResponse struct {
	ID                 uint                     `json:"id"`
	VIN                string                   `json:"VIN"`
	ServiceDate        string                   `json:"service_date"`
	ServiceDescription string                   `json:"service_description"`
	CustomerID         uint                     `json:"customer_id"`
	Mechanics          []TicketMechanicResponse `json:"mechanics"`
}

func newTicketResponse(r *ticketUC.TicketResult) *TicketResponse {
	mechanics := make([]TicketMechanicResponse, 0, len(r.Mechanics))
	for _, m := range r.Mechanics {
		mechanics = append(mechanics, TicketMechanicResponse{ID: m.ID, Name: m.Name})
	}
	return &TicketResponse{
		ID:                 r.ID,
		VIN:                r.VIN,
		ServiceDate:        r.ServiceDate.Format(serviceDateLayout),
		ServiceDescription: r.ServiceDescription,
		CustomerID:         r.CustomerID,
		Mechanics:          mechanics,
	}
}
