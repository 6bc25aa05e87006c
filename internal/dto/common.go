package dto

// ListResponse is the paginated list envelope shared by every collection
// endpoint.
type ListResponse[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// NewListResponse windows the full result set to the requested page. Page and
// limit are assumed already clamped by the pagination middleware.
func NewListResponse[T any](items []T, page, limit int) ListResponse[T] {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return ListResponse[T]{
		Data:       items[start:end],
		Page:       page,
		Limit:      limit,
		TotalCount: total,
		TotalPages: totalPages,
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
	DB        string `json:"db,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
