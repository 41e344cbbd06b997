package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersSummaryQueryHandler counts orders grouped by status. Used by the
// periodic stats job and the summary endpoint.
type GetOrdersSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrdersSummaryQueryHandler(db *gorm.DB) GetOrdersSummaryQueryHandler {
	return GetOrdersSummaryQueryHandler{db: db}
}

// Handle executes the query. An empty table yields an empty Counts slice
// and a zero Total, not an error.
func (h GetOrdersSummaryQueryHandler) Handle(
	ctx context.Context,
	_ GetOrdersSummaryQuery,
) (GetOrdersSummaryQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS count
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}
	defer rows.Close()

	var response GetOrdersSummaryQueryResponse
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return GetOrdersSummaryQueryResponse{}, err
		}
		response.Counts = append(response.Counts, sc)
		response.Total += sc.Count
	}
	if err := rows.Err(); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	return response, nil
}
