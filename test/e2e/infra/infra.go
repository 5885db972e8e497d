package infra

// InfraManager abstracts the lifecycle of the collaborators the suite talks to.
// External: everything runs elsewhere, all methods are no-ops.
// Local: in-process mock SSO realm and mock ingestion/search services.
type InfraManager interface {
	StartSSO() error
	StopSSO() error
	StartServices() error
	StopServices() error
	Endpoints() Endpoints
}

// Endpoints are the base URLs the suite should use once the infrastructure
// is up.
type Endpoints struct {
	SSO         string
	AdvisoryURL string
	SBOMURL     string
	SpogAPIURL  string
}

// Realm identifies the SSO realm and the client used by the importer.
type Realm struct {
	Name         string
	ClientID     string
	ClientSecret string
}
