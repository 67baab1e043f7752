package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DashboardQRGenerator encodes a link to the order's dashboard entry, so a
// printed ticket can be scanned at the pass.
type DashboardQRGenerator struct {
	BaseURL string
}

func (g DashboardQRGenerator) Generate(orderID int64) ([]byte, error) {
	qrData := fmt.Sprintf("%s/dashboard.html?order_id=%d", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
