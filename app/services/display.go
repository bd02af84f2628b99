package services

import "BoucheriePos/app/models"

// DisplayNotifier pushes terminal state to connected customer displays.
// Implemented by the websocket server; nil when no display is configured.
type DisplayNotifier interface {
	BroadcastCartUpdate(items []models.CartItem, total int64)
	BroadcastSaleCompleted(sale *models.Sale)
}
