// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/letter"
	"ceaseletter/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database row for an order aggregate. The form
// snapshot and the audit trail are stored as JSONB documents; customer email
// and collector name are denormalized into their own columns so listings,
// search, and the CSV export never parse the form payload.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    int       `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	CustomerEmail string `gorm:"index"`
	CollectorName string `gorm:"index"`

	TrackingNumber string
	LobLetterID    string
	LobMailingID   string
	Notes          string
	LastError      string

	LetterText string
	Form       datatypes.JSON `gorm:"type:jsonb"`
	Events     datatypes.JSON `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	formJSON, err := json.Marshal(aggregate.Form())
	if err != nil {
		return OrderDTO{}, err
	}

	eventsJSON, err := json.Marshal(aggregate.Events())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		CustomerEmail:  aggregate.CustomerEmail(),
		CollectorName:  aggregate.CollectorName(),
		TrackingNumber: aggregate.TrackingNumber(),
		LobLetterID:    aggregate.LobLetterID(),
		LobMailingID:   aggregate.LobMailingID(),
		Notes:          aggregate.Notes(),
		LastError:      aggregate.LastError(),
		LetterText:     aggregate.LetterText(),
		Form:           datatypes.JSON(formJSON),
		Events:         datatypes.JSON(eventsJSON),
	}, nil
}

// toDomain converts a database row back into an order aggregate using
// RestoreOrder, which skips creation side effects.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var form letter.Form
	if len(dto.Form) > 0 {
		if err = json.Unmarshal(dto.Form, &form); err != nil {
			return nil, err
		}
	}

	var events []order.Event
	if len(dto.Events) > 0 {
		if err = json.Unmarshal(dto.Events, &events); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		order.Status(dto.Status),
		dto.CreatedAt, dto.UpdatedAt,
		form,
		dto.LetterText,
		dto.TrackingNumber, dto.LobLetterID, dto.LobMailingID,
		dto.Notes, dto.LastError,
		events,
	)
}
