package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"BoucheriePos/app/config"
	"BoucheriePos/app/models"

	"github.com/skip2/go-qrcode"
)

const receiptWidth = 32

// ReceiptService renders the ticket shown in the payment flow's receipt
// preview. Rendering only reads the sale; printing hardware is out of
// scope.
type ReceiptService struct {
	business config.BusinessConfig
}

// NewReceiptService creates a new receipt service
func NewReceiptService(business config.BusinessConfig) *ReceiptService {
	return &ReceiptService{business: business}
}

// FormatCFA renders an amount in francs with thousand grouping,
// e.g. 12500 -> "12 500 FCFA".
func FormatCFA(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	neg := false
	if strings.HasPrefix(digits, "-") {
		neg = true
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	return out + " FCFA"
}

// RenderTicket renders the receipt as plain text, one line per cart item
// with its quantity and unit price, followed by total, amount received and
// change.
func (s *ReceiptService) RenderTicket(sale *models.Sale) string {
	var b strings.Builder
	sep := strings.Repeat("-", receiptWidth)

	center := func(text string) {
		pad := (receiptWidth - len([]rune(text))) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad) + text + "\n")
	}

	center(strings.ToUpper(s.business.Name))
	if s.business.Locality != "" {
		center(s.business.Locality)
	}
	if s.business.Address != "" {
		center(s.business.Address)
	}
	if s.business.Phone != "" {
		center("Tel: " + s.business.Phone)
	}
	b.WriteString(sep + "\n")

	b.WriteString(fmt.Sprintf("Date:      %s\n", formatTicketDate(sale.Date)))
	b.WriteString(fmt.Sprintf("Ticket N°: %s\n", sale.TicketNumber()))
	b.WriteString(fmt.Sprintf("Vendeur:   %s\n", sale.EmployeeName))
	b.WriteString(sep + "\n")

	for _, item := range sale.Items {
		b.WriteString(item.Product.Name + "\n")
		b.WriteString(fmt.Sprintf("  %s %s x %s = %s\n",
			formatQuantity(item.Quantity),
			item.Product.Unit,
			FormatCFA(item.Product.Price),
			FormatCFA(item.LineTotal()),
		))
	}
	b.WriteString(sep + "\n")

	b.WriteString(fmt.Sprintf("TOTAL:     %s\n", FormatCFA(sale.Total)))
	b.WriteString(fmt.Sprintf("Reçu:      %s\n", FormatCFA(sale.AmountReceived)))
	b.WriteString(fmt.Sprintf("Rendu:     %s\n", FormatCFA(sale.Change)))
	b.WriteString(sep + "\n")

	center("Merci de votre visite !")
	return b.String()
}

// RenderQRCode returns a PNG QR code of the ticket number, shown at the
// bottom of the receipt preview.
func (s *ReceiptService) RenderQRCode(sale *models.Sale) ([]byte, error) {
	png, err := qrcode.Encode(sale.TicketNumber(), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ticket QR code: %w", err)
	}
	return png, nil
}

// formatQuantity drops trailing zeros so whole pieces read "1" and
// weights read "1.25".
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatTicketDate(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006 15:04")
}
