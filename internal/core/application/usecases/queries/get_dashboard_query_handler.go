package queries

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Dashboard is a tagged union: exactly the view matching Role is set.
type Dashboard struct {
	Role   user.Role
	From   time.Time
	To     time.Time
	Admin  *AdminDashboard
	Server *ServerDashboard
	Client *ClientDashboard
}

type AdminDashboard struct {
	OrdersByStatus map[order.Status]int64
	Revenue        kernel.Money
	ActiveOrders   int64
	MenuItems      int64
	MenuCategories int64
	UsersByRole    map[user.Role]int64
}

type ServerDashboard struct {
	OrdersByStatus map[order.Status]int64
	ActiveOrders   int64
}

type ClientDashboard struct {
	Orders       int64
	ActiveOrders int64
	TotalSpent   kernel.Money
}

// GetDashboardQueryHandler composes the dashboard from independent aggregate
// reads run concurrently. Revenue and spending are summed from order items,
// the same figures Order.Total reports.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Dashboard, error) {
	if err := query.Validate(); err != nil {
		return Dashboard{}, err
	}

	actor := query.Actor()
	if err := actor.Validate(); err != nil {
		return Dashboard{}, errs.NewForbiddenError(err)
	}

	dashboard := Dashboard{Role: actor.Role, From: query.From(), To: query.To()}
	var err error
	switch actor.Role {
	case user.RoleAdmin:
		dashboard.Admin, err = h.admin(ctx, query.From(), query.To())
	case user.RoleServer:
		dashboard.Server, err = h.server(ctx)
	case user.RoleClient:
		dashboard.Client, err = h.client(ctx, actor.UserID)
	case user.RoleUnknown:
		err = errs.NewForbiddenError(fmt.Errorf("role %s has no dashboard", actor.Role))
	}
	if err != nil {
		return Dashboard{}, err
	}
	return dashboard, nil
}

func (h GetDashboardQueryHandler) admin(ctx context.Context, from, to time.Time) (*AdminDashboard, error) {
	d := &AdminDashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.OrdersByStatus, err = h.ordersByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.Revenue, err = h.sumPaid(gctx,
			"o.updated_at >= ? AND o.updated_at < ?", from, to)
		return err
	})
	g.Go(func() (err error) {
		d.ActiveOrders, err = h.countActive(gctx, "")
		return err
	})
	g.Go(func() error {
		return h.db.WithContext(gctx).Raw(`
			SELECT
				(SELECT COUNT(*) FROM menu_items),
				(SELECT COUNT(*) FROM menu_categories)
		`).Row().Scan(&d.MenuItems, &d.MenuCategories)
	})
	g.Go(func() (err error) {
		d.UsersByRole, err = h.usersByRole(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

func (h GetDashboardQueryHandler) server(ctx context.Context) (*ServerDashboard, error) {
	d := &ServerDashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.OrdersByStatus, err = h.ordersByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.ActiveOrders, err = h.countActive(gctx, "")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

func (h GetDashboardQueryHandler) client(ctx context.Context, customerID kernel.UUID) (*ClientDashboard, error) {
	d := &ClientDashboard{}
	id := customerID.Bytes()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return h.db.WithContext(gctx).Raw(
			`SELECT COUNT(*) FROM orders WHERE customer_id = ?`, id,
		).Row().Scan(&d.Orders)
	})
	g.Go(func() (err error) {
		d.ActiveOrders, err = h.countActive(gctx, "customer_id = ?", id)
		return err
	})
	g.Go(func() (err error) {
		d.TotalSpent, err = h.sumPaid(gctx, "o.customer_id = ?", id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

// ordersByStatus counts orders per status; statuses without orders are
// reported as zero.
func (h GetDashboardQueryHandler) ordersByStatus(ctx context.Context) (map[order.Status]int64, error) {
	counts := make(map[order.Status]int64, len(order.Statuses()))
	for _, s := range order.Statuses() {
		counts[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			raw   string
			count int64
		)
		if err = rows.Scan(&raw, &count); err != nil {
			return nil, err
		}
		status, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (h GetDashboardQueryHandler) usersByRole(ctx context.Context) (map[user.Role]int64, error) {
	counts := make(map[user.Role]int64, len(user.Roles()))
	for _, r := range user.Roles() {
		counts[r] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT role, COUNT(*)
		FROM user_profiles
		GROUP BY role
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			raw   string
			count int64
		)
		if err = rows.Scan(&raw, &count); err != nil {
			return nil, err
		}
		role, parseErr := user.ParseRole(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[role] = count
	}
	return counts, rows.Err()
}

func (h GetDashboardQueryHandler) countActive(ctx context.Context, filter string, args ...any) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status IN ?`
	if filter != "" {
		query += " AND " + filter
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(query, append([]any{activeStatuses()}, args...)...).Row().Scan(&count)
	return count, err
}

func (h GetDashboardQueryHandler) sumPaid(ctx context.Context, filter string, args ...any) (kernel.Money, error) {
	query := `
		SELECT COALESCE(SUM(oi.quantity * oi.unit_price), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = ? AND ` + filter

	var sum decimal.Decimal
	err := h.db.WithContext(ctx).Raw(query, append([]any{order.Paid.String()}, args...)...).Row().Scan(&sum)
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(sum)
}

func activeStatuses() []string {
	var active []string
	for _, s := range order.Statuses() {
		if s.IsActive() {
			active = append(active, s.String())
		}
	}
	return active
}
