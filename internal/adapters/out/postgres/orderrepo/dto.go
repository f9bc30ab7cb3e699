// Package orderrepo persists order aggregates. An order is stored as one row
// in orders plus one row per line in order_items; the total is never stored
// and is always recomputed from the items.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status     string         `gorm:"type:varchar(32);not null;index"`
	TableRef   string         `gorm:"type:varchar(32);not null;default:''"`
	Notes      string         `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time      `gorm:"not null;index"`
	UpdatedAt  time.Time      `gorm:"not null;index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is an order line. Position keeps the submission order of the
// cart lines.
type OrderItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position     int             `gorm:"type:int;not null"`
	MenuItemID   uuid.UUID       `gorm:"type:uuid;not null"`
	ItemName     string          `gorm:"type:varchar(255);not null"`
	Quantity     int             `gorm:"type:int;not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Instructions string          `gorm:"type:text;not null;default:''"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := o.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, OrderItemDTO{
			ID:           item.ID().Bytes(),
			OrderID:      orderID,
			Position:     i,
			MenuItemID:   item.MenuItemID().Bytes(),
			ItemName:     item.Name(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Decimal(),
			Instructions: item.Instructions(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: o.CustomerID().Bytes(),
		Status:     o.Status().String(),
		TableRef:   o.TableRef(),
		Notes:      o.Notes(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
		Items:      dtos,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, status, dto.TableRef, dto.Notes, items,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.RestoreItem(id, menuItemID, dto.ItemName, dto.Quantity, price, dto.Instructions)
}
