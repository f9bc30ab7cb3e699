package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetMenuQueryResponse struct {
	Sections []MenuSection
}

type MenuSection struct {
	CategoryID  kernel.UUID
	Name        string
	Description string
	Items       []MenuItemView
}

type MenuItemView struct {
	ID                 kernel.UUID
	Name               string
	Description        string
	Price              kernel.Money
	PreparationMinutes int
	Allergens          []string
}

// GetMenuQueryHandler returns the customer facing menu. Every category and
// item is read and the filtering and ordering is left to menu.ListAvailable.
type GetMenuQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetMenuQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db, policy: policy}
}

type categoryRow struct {
	ID           uuid.UUID
	Name         string
	Description  string
	DisplayOrder int
	Active       bool
}

type menuItemRow struct {
	ID                 uuid.UUID
	CategoryID         uuid.UUID
	Name               string
	Description        string
	Price              decimal.Decimal
	PreparationMinutes int
	Available          bool
	Allergens          pq.StringArray `gorm:"type:text[]"`
}

func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.BrowseMenu); err != nil {
		return GetMenuQueryResponse{}, err
	}

	var categoryRows []categoryRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, display_order, active
		FROM menu_categories
	`).Scan(&categoryRows).Error; err != nil {
		return GetMenuQueryResponse{}, err
	}

	var itemRows []menuItemRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, category_id, name, description, price, preparation_minutes, available, allergens
		FROM menu_items
		WHERE available
	`).Scan(&itemRows).Error; err != nil {
		return GetMenuQueryResponse{}, err
	}

	categories := make([]*menu.Category, 0, len(categoryRows))
	for _, r := range categoryRows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return GetMenuQueryResponse{}, err
		}
		c, err := menu.RestoreCategory(id, r.Name, r.Description, r.DisplayOrder, r.Active)
		if err != nil {
			return GetMenuQueryResponse{}, err
		}
		categories = append(categories, c)
	}

	items := make([]*menu.Item, 0, len(itemRows))
	for _, r := range itemRows {
		item, err := restoreMenuItem(r)
		if err != nil {
			return GetMenuQueryResponse{}, err
		}
		items = append(items, item)
	}

	response := GetMenuQueryResponse{Sections: []MenuSection{}}
	for c, sectionItems := range menu.ListAvailable(categories, items) {
		section := MenuSection{
			CategoryID:  c.ID(),
			Name:        c.Name(),
			Description: c.Description(),
			Items:       make([]MenuItemView, 0, len(sectionItems)),
		}
		for _, item := range sectionItems {
			section.Items = append(section.Items, MenuItemView{
				ID:                 item.ID(),
				Name:               item.Name(),
				Description:        item.Description(),
				Price:              item.Price(),
				PreparationMinutes: item.PreparationMinutes(),
				Allergens:          item.Allergens(),
			})
		}
		response.Sections = append(response.Sections, section)
	}
	return response, nil
}

func restoreMenuItem(r menuItemRow) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(r.CategoryID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return nil, err
	}
	return menu.RestoreItem(id, categoryID, menu.ItemDetails{
		Name:               r.Name,
		Description:        r.Description,
		Price:              price,
		PreparationMinutes: r.PreparationMinutes,
		Allergens:          r.Allergens,
	}, r.Available)
}
