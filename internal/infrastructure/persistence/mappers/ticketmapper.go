package mappers

import (
	"time"

	"gearshop/internal/domain/ticket"
	"gearshop/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                 t.ID(),
		VIN:                t.VIN(),
		ServiceDate:        t.ServiceDate().UnixMilli(),
		ServiceDescription: t.ServiceDescription(),
		CustomerID:         t.CustomerID(),
		CreatedAt:          t.CreatedAt().UnixMilli(),
		UpdatedAt:          t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.VIN,
		time.UnixMilli(model.ServiceDate),
		model.ServiceDescription,
		model.CustomerID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
