package dto

// OrderCreateRequest names the pricing tier to snapshot
type OrderCreateRequest struct {
	OfferDetailID int64 `json:"offer_detail_id" validate:"required,gt=0"`
}

// OrderStatusRequest carries a status transition
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderCountResponse is the total order count for a business user
type OrderCountResponse struct {
	OrderCount int64 `json:"order_count"`
}

// CompletedOrderCountResponse is the completed-order count for a business user
type CompletedOrderCountResponse struct {
	CompletedOrderCount int64 `json:"completed_order_count"`
}
