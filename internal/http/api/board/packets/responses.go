package packets

type RefreshResponse struct {
	RefreshedAt string `json:"refreshed_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
