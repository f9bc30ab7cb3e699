package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is an order as shown to staff and customers.
type OrderView struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     order.Status
	TableRef   string
	Notes      string
	Items      []OrderItemView
	Total      kernel.Money
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderItemView struct {
	MenuItemID   kernel.UUID
	Name         string
	Quantity     int
	UnitPrice    kernel.Money
	Subtotal     kernel.Money
	Instructions string
}

// NewOrderView maps an order aggregate to its response shape.
func NewOrderView(o *order.Order) OrderView {
	items := o.Items()
	views := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		views = append(views, OrderItemView{
			MenuItemID:   item.MenuItemID(),
			Name:         item.Name(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
			Subtotal:     item.Subtotal(),
			Instructions: item.Instructions(),
		})
	}
	return OrderView{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Status:     o.Status(),
		TableRef:   o.TableRef(),
		Notes:      o.Notes(),
		Items:      views,
		Total:      o.Total(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

type orderRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Status     string
	TableRef   string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type orderItemRow struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	MenuItemID   uuid.UUID
	ItemName     string
	Quantity     int
	UnitPrice    decimal.Decimal
	Instructions string
}

// loadOrders reads the orders matching filter (a WHERE clause over the orders
// table, possibly empty) newest first, together with their items, and
// rebuilds them as aggregates so totals always come from the items.
func loadOrders(ctx context.Context, db *gorm.DB, filter string, args ...any) ([]*order.Order, error) {
	query := `
		SELECT id, customer_id, status, table_ref, notes, created_at, updated_at
		FROM orders`
	if filter != "" {
		query += " WHERE " + filter
	}
	query += " ORDER BY created_at DESC, id"

	var rows []orderRow
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []*order.Order{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var itemRows []orderItemRow
	if err := db.WithContext(ctx).Raw(`
		SELECT id, order_id, menu_item_id, item_name, quantity, unit_price, instructions
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Scan(&itemRows).Error; err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uuid.UUID][]order.Item, len(rows))
	for _, r := range itemRows {
		item, err := restoreItem(r)
		if err != nil {
			return nil, err
		}
		itemsByOrder[r.OrderID] = append(itemsByOrder[r.OrderID], item)
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, r := range rows {
		o, err := restoreOrder(r, itemsByOrder[r.ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func restoreOrder(r orderRow, items []order.Item) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(id, customerID, status, r.TableRef, r.Notes, items, r.CreatedAt, r.UpdatedAt)
}

func restoreItem(r orderItemRow) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	menuItemID, err := kernel.UUIDFromBytes(r.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(r.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.RestoreItem(id, menuItemID, r.ItemName, r.Quantity, price, r.Instructions)
}
