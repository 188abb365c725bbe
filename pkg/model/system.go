package model

type RootResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Diagnostics is the body of GET /test. The human readable values match
// what operators of the previous deployment already look for; State
// carries the machine readable connectivity result.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	State            string   `json:"state"`
	Collections      []string `json:"collections"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
