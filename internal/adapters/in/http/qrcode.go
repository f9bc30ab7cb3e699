package http

import (
	"fmt"
	"net/http"
	"strings"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"
)

const ticketSize = 256

// GetOrderTicket handles GET /api/v1/orders/:id/qrcode. The PNG encodes the
// order URL printed on kitchen and table tickets. Access follows GetOrder.
func (s *Server) GetOrderTicket(ctx echo.Context) error {
	view, err := s.getOrder(ctx)
	if err != nil {
		return err
	}

	png, err := ticketPNG(s.ticketURL, view.ID)
	if err != nil {
		return fmt.Errorf("encode ticket for order %s: %w", view.ID, err)
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

func ticketPNG(baseURL string, orderID kernel.UUID) ([]byte, error) {
	return qrcode.Encode(fmt.Sprintf("%s/orders/%s", strings.TrimRight(baseURL, "/"), orderID), qrcode.Medium, ticketSize)
}
