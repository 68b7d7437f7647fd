package model

// GetMetricsRequest carries no fields; GET /api/metrics has no body.
type GetMetricsRequest struct{}

func (r *GetMetricsRequest) Validate() error {
	return nil
}

type Metrics struct {
	Products uint64 `json:"products"`
	Orders   uint64 `json:"orders"`
	Users    uint64 `json:"users"`
	APICalls uint64 `json:"api_calls"`
}
