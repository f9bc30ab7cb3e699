// Package menurepo persists the menu catalog: categories and the items
// listed under them.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null;default:''"`
	DisplayOrder int       `gorm:"type:int;not null"`
	Active       bool      `gorm:"not null;default:true"`
}

func (CategoryDTO) TableName() string {
	return "menu_categories"
}

type ItemDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category           CategoryDTO     `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Description        string          `gorm:"type:text;not null;default:''"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PreparationMinutes int             `gorm:"type:int;not null"`
	Available          bool            `gorm:"not null;default:true"`
	Allergens          pq.StringArray  `gorm:"type:text[];not null;default:'{}'"`
}

func (ItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(c *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		Description:  c.Description(),
		DisplayOrder: c.DisplayOrder(),
		Active:       c.IsActive(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return menu.RestoreCategory(id, dto.Name, dto.Description, dto.DisplayOrder, dto.Active)
}

func itemFromDomain(i *menu.Item) ItemDTO {
	allergens := i.Allergens()
	if allergens == nil {
		allergens = []string{}
	}
	return ItemDTO{
		ID:                 i.ID().Bytes(),
		CategoryID:         i.CategoryID().Bytes(),
		Name:               i.Name(),
		Description:        i.Description(),
		Price:              i.Price().Decimal(),
		PreparationMinutes: i.PreparationMinutes(),
		Available:          i.IsAvailable(),
		Allergens:          allergens,
	}
}

func itemToDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return menu.RestoreItem(id, categoryID, menu.ItemDetails{
		Name:               dto.Name,
		Description:        dto.Description,
		Price:              price,
		PreparationMinutes: dto.PreparationMinutes,
		Allergens:          dto.Allergens,
	}, dto.Available)
}
