package infra

// ExternalInfraManager implements InfraManager for a deployed SPOG stack.
// The SSO realm, the ingestion services and the UI are managed elsewhere;
// endpoints come straight from the configuration.
type ExternalInfraManager struct {
	endpoints Endpoints
}

func NewExternalInfraManager(endpoints Endpoints) *ExternalInfraManager {
	return &ExternalInfraManager{endpoints: endpoints}
}

func (e *ExternalInfraManager) StartSSO() error      { return nil }
func (e *ExternalInfraManager) StopSSO() error       { return nil }
func (e *ExternalInfraManager) StartServices() error { return nil }
func (e *ExternalInfraManager) StopServices() error  { return nil }

func (e *ExternalInfraManager) Endpoints() Endpoints {
	return e.endpoints
}
