package http

import (
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// Requests

type CategoryRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active,omitempty"`
}

type MenuItemRequest struct {
	CategoryID         uuid.UUID `json:"category_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              string    `json:"price"`
	PreparationMinutes int       `json:"preparation_minutes"`
	Allergens          []string  `json:"allergens"`
}

type AvailabilityRequest struct {
	Available bool `json:"available"`
}

type PriceRequest struct {
	Price string `json:"price"`
}

type AddToCartRequest struct {
	ItemID uuid.UUID `json:"item_id"`
}

type InstructionsRequest struct {
	Instructions string `json:"instructions"`
}

type SubmitOrderRequest struct {
	TableRef string `json:"table_ref"`
	Notes    string `json:"notes"`
}

type ProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type RoleRequest struct {
	Role string `json:"role"`
}

// Responses

type Created struct {
	ID uuid.UUID `json:"id"`
}

type MenuItem struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              string    `json:"price"`
	PreparationMinutes int       `json:"preparation_minutes"`
	Allergens          []string  `json:"allergens"`
}

type MenuSection struct {
	CategoryID  uuid.UUID  `json:"category_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items"`
}

type Menu struct {
	Sections []MenuSection `json:"sections"`
}

type CartLine struct {
	ItemID       uuid.UUID `json:"item_id"`
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	UnitPrice    string    `json:"unit_price"`
	Subtotal     string    `json:"subtotal"`
	Instructions string    `json:"instructions,omitempty"`
}

type Cart struct {
	Lines []CartLine `json:"lines"`
	Total string     `json:"total"`
}

type OrderItem struct {
	MenuItemID   uuid.UUID `json:"menu_item_id"`
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	UnitPrice    string    `json:"unit_price"`
	Subtotal     string    `json:"subtotal"`
	Instructions string    `json:"instructions,omitempty"`
}

type Order struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID uuid.UUID   `json:"customer_id"`
	Status     string      `json:"status"`
	TableRef   string      `json:"table_ref,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Items      []OrderItem `json:"items"`
	Total      string      `json:"total"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CancelResult struct {
	Order   Order `json:"order"`
	Changed bool  `json:"changed"`
}

type Profile struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminDashboard struct {
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	Revenue        string           `json:"revenue"`
	ActiveOrders   int64            `json:"active_orders"`
	MenuItems      int64            `json:"menu_items"`
	MenuCategories int64            `json:"menu_categories"`
	UsersByRole    map[string]int64 `json:"users_by_role"`
}

type ServerDashboard struct {
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	ActiveOrders   int64            `json:"active_orders"`
}

type ClientDashboard struct {
	Orders       int64  `json:"orders"`
	ActiveOrders int64  `json:"active_orders"`
	TotalSpent   string `json:"total_spent"`
}

type Dashboard struct {
	Role   string           `json:"role"`
	From   time.Time        `json:"from"`
	To     time.Time        `json:"to"`
	Admin  *AdminDashboard  `json:"admin,omitempty"`
	Server *ServerDashboard `json:"server,omitempty"`
	Client *ClientDashboard `json:"client,omitempty"`
}

func (r MenuItemRequest) toInput() commands.MenuItemInput {
	return commands.MenuItemInput{
		CategoryID:         kernelUUID(r.CategoryID),
		Name:               r.Name,
		Description:        r.Description,
		Price:              r.Price,
		PreparationMinutes: r.PreparationMinutes,
		Allergens:          r.Allergens,
	}
}

func (r ProfileRequest) toContact() user.Contact {
	return user.Contact{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, Phone: r.Phone}
}

func toMenu(resp queries.GetMenuQueryResponse) Menu {
	sections := make([]MenuSection, 0, len(resp.Sections))
	for _, s := range resp.Sections {
		items := make([]MenuItem, 0, len(s.Items))
		for _, it := range s.Items {
			allergens := it.Allergens
			if allergens == nil {
				allergens = []string{}
			}
			items = append(items, MenuItem{
				ID:                 it.ID.Bytes(),
				Name:               it.Name,
				Description:        it.Description,
				Price:              it.Price.String(),
				PreparationMinutes: it.PreparationMinutes,
				Allergens:          allergens,
			})
		}
		sections = append(sections, MenuSection{
			CategoryID:  s.CategoryID.Bytes(),
			Name:        s.Name,
			Description: s.Description,
			Items:       items,
		})
	}
	return Menu{Sections: sections}
}

func toCart(v queries.CartView) Cart {
	lines := make([]CartLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, CartLine{
			ItemID:       l.ItemID.Bytes(),
			Name:         l.Name,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice.String(),
			Subtotal:     l.Subtotal.String(),
			Instructions: l.Instructions,
		})
	}
	return Cart{Lines: lines, Total: v.Total.String()}
}

func toOrder(v queries.OrderView) Order {
	items := make([]OrderItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, OrderItem{
			MenuItemID:   it.MenuItemID.Bytes(),
			Name:         it.Name,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice.String(),
			Subtotal:     it.Subtotal.String(),
			Instructions: it.Instructions,
		})
	}
	return Order{
		ID:         v.ID.Bytes(),
		CustomerID: v.CustomerID.Bytes(),
		Status:     v.Status.String(),
		TableRef:   v.TableRef,
		Notes:      v.Notes,
		Items:      items,
		Total:      v.Total.String(),
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func toOrders(views []queries.OrderView) []Order {
	out := make([]Order, 0, len(views))
	for _, v := range views {
		out = append(out, toOrder(v))
	}
	return out
}

func toProfile(p *user.Profile) Profile {
	return Profile{
		ID:        p.ID().Bytes(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
		Email:     p.Email(),
		Phone:     p.Phone(),
		Role:      p.Role().String(),
		CreatedAt: p.CreatedAt(),
	}
}

func toProfiles(views []queries.UserView) []Profile {
	out := make([]Profile, 0, len(views))
	for _, v := range views {
		out = append(out, Profile{
			ID:        v.ID.Bytes(),
			FirstName: v.FirstName,
			LastName:  v.LastName,
			Email:     v.Email,
			Phone:     v.Phone,
			Role:      v.Role.String(),
			CreatedAt: v.CreatedAt,
		})
	}
	return out
}

func toDashboard(d queries.Dashboard) Dashboard {
	out := Dashboard{Role: d.Role.String(), From: d.From, To: d.To}
	switch {
	case d.Admin != nil:
		users := make(map[string]int64, len(d.Admin.UsersByRole))
		for role, n := range d.Admin.UsersByRole {
			users[role.String()] = n
		}
		out.Admin = &AdminDashboard{
			OrdersByStatus: statusCounts(d.Admin.OrdersByStatus),
			Revenue:        d.Admin.Revenue.String(),
			ActiveOrders:   d.Admin.ActiveOrders,
			MenuItems:      d.Admin.MenuItems,
			MenuCategories: d.Admin.MenuCategories,
			UsersByRole:    users,
		}
	case d.Server != nil:
		out.Server = &ServerDashboard{
			OrdersByStatus: statusCounts(d.Server.OrdersByStatus),
			ActiveOrders:   d.Server.ActiveOrders,
		}
	case d.Client != nil:
		out.Client = &ClientDashboard{
			Orders:       d.Client.Orders,
			ActiveOrders: d.Client.ActiveOrders,
			TotalSpent:   d.Client.TotalSpent.String(),
		}
	}
	return out
}
