package consumerhost

// ProjectIndexer is an indexer serving a deployment through the consumer host.
type ProjectIndexer struct {
	Indexer string `json:"indexer"`
	// Price per request in the token's smallest unit.
	Price string `json:"price"`
	// MaxTime is the longest channel expiration the indexer accepts, in seconds.
	MaxTime int64 `json:"max_time"`
}

type projectResponse struct {
	Indexers []ProjectIndexer `json:"indexers"`
}

type ChannelLimit struct {
	ChannelMaxNum    int64   `json:"channel_max_num"`
	ChannelMinAmount float64 `json:"channel_min_amount"`
	ChannelMinDays   int64   `json:"channel_min_days"`
}

type HostingPlanDeployment struct {
	Deployment string `json:"deployment"`
}

type HostingPlan struct {
	ID         int64                 `json:"id"`
	Deployment HostingPlanDeployment `json:"deployment"`
	Price      string                `json:"price"`
	Maximum    int64                 `json:"maximum"`
	Expiration int64                 `json:"expiration"`
	Created    string                `json:"created_at,omitempty"`
}

// HostingPlanParams is the body of create and update calls. Price is per request in
// the token's smallest unit, Expiration in seconds.
type HostingPlanParams struct {
	ID           string `json:"id"`
	DeploymentID string `json:"deploymentId"`
	Price        string `json:"price"`
	Maximum      int64  `json:"maximum"`
	Expiration   int64  `json:"expiration"`
}
