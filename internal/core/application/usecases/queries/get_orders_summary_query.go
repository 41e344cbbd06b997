package queries

// GetOrdersSummaryQuery requests per-status order counts. It carries no
// parameters, so the zero value is valid and no constructor guard is needed.
type GetOrdersSummaryQuery struct{}

// NewGetOrdersSummaryQuery creates a summary query.
func NewGetOrdersSummaryQuery() GetOrdersSummaryQuery {
	return GetOrdersSummaryQuery{}
}

// StatusCount is the number of orders currently in a given status.
type StatusCount struct {
	Status string
	Count  int64
}

// GetOrdersSummaryQueryResponse holds order counts grouped by status.
// Statuses with no orders are omitted.
type GetOrdersSummaryQueryResponse struct {
	Counts []StatusCount
	Total  int64
}
