package order_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/EShop-Commerce/eshop-storefront-gateway/config"
	"github.com/EShop-Commerce/eshop-storefront-gateway/models"
)

// DownloadOrderInvoice godoc
// @Summary Download order invoice PDF
// @Description Generate and download an invoice PDF for one of the user's orders
// @Tags Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /user/orders/{id}/invoice [get]
func (oc *OrderController) DownloadOrderInvoice(c *gin.Context) {
	_, user, token, ok := signedInUser(c)
	if !ok {
		return
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	order, err := oc.API.OrderByID(ctx, token, user.ID, orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	buf, err := generateOrderInvoicePDF(order, user)
	if err != nil {
		log.Printf("[orders.invoice] pdf generation failed for order %d: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// generateOrderInvoicePDF renders an order invoice.
func generateOrderInvoicePDF(order *models.Order, user *models.User) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("E-SHOP", props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("support@eshop.example", props.Text{Size: 9, Color: mediumGray})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(user.Name, props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{Size: 10, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(user.Email, props.Text{Size: 9, Color: mediumGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	for _, item := range order.Items {
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.ProductName, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(strconv.Itoa(item.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Subtotal), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(10, func() {
			m.Text("Subtotal", props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.Subtotal), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(10, func() {
			m.Text("Shipping", props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.Shipping), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(7, func() {
		m.Col(10, func() {
			m.Text("Total", props.Text{Size: 11, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.TotalAmount), props.Text{Size: 11, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
