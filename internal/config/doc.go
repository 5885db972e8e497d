// Package config defines the configuration of the SPOG UI end-to-end suite.
//
// # Configuration Structure
//
//	Configuration
//	├── UI          - application under test and login user
//	├── SSO         - identity provider used by the fixture importer
//	├── Services    - ingestion (VEX, SBOM) and SPOG API endpoints
//	├── Fixtures    - fixture directory and upload workers
//	├── Runner      - retries, viewport, indexing waits, isolation
//	├── InfraMode   - "external" or "local"
//	├── LogFormat   - "console" or "json"
//	└── LogLevel    - zap level
//
// # Sources
//
// Values are layered, lowest precedence first:
//
//  1. struct defaults (`default` tags, applied with creasty/defaults)
//  2. an optional YAML or JSON file passed to Load
//  3. environment variables, prefix SPOG, dots replaced by underscores
//  4. command line flags bound with BindFlags before Load
//
// Environment examples:
//
//	┌─────────────────────────────┬─────────────────────────┬────────────────────────┐
//	│ Variable                    │ Key                     │ Default                │
//	├─────────────────────────────┼─────────────────────────┼────────────────────────┤
//	│ SPOG_UI_URL                 │ ui.url                  │ http://localhost:8084  │
//	│ SPOG_UI_USERNAME            │ ui.username             │ admin                  │
//	│ SPOG_UI_PASSWORD            │ ui.password             │ admin123456            │
//	│ SPOG_SSO_URL                │ sso.url                 │ http://localhost:8090  │
//	│ SPOG_SSO_REALM              │ sso.realm               │ chicken                │
//	│ SPOG_SSO_CLIENTID           │ sso.clientId            │ walker                 │
//	│ SPOG_SERVICES_SBOMURL       │ services.sbomUrl        │ http://127.0.0.1:8082  │
//	│ SPOG_SERVICES_ADVISORYURL   │ services.advisoryUrl    │ http://127.0.0.1:8081  │
//	│ SPOG_RUNNER_INTERACTIVE     │ runner.interactive      │ false                  │
//	│ SPOG_RUNNER_INDEXWAIT       │ runner.indexWait        │ 10s                    │
//	│ SPOG_RUNNER_RETRIES         │ runner.retries          │ 2                      │
//	└─────────────────────────────┴─────────────────────────┴────────────────────────┘
//
// # Indexing delay
//
// After the fixtures are imported the suite waits Runner.IndexingDelay():
// InteractiveIndexWait (500ms) when a person is watching the browser,
// IndexWait (10s) otherwise. Setting Runner.PollIndex replaces the sleep
// with a search poll against the SPOG API.
//
// # Flags
//
// Programs map their flag names to keys and bind the ones that were set:
//
//	err := config.BindFlags(v, cmd.Flags(), config.FlagKeys{
//	    "fixtures": "fixtures.directory",
//	})
//	cfg, err := config.Load(v, configFile)
//
// FromGoFlags adapts a standard library flag set for the same call.
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration UI SSO Services Fixtures Runner
//
// Generated helpers include:
//
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithUI(UI), WithRunner(Runner), WithIndexWait(time.Duration), etc.
//   - (*Runner).WithOptions(...RunnerOption) - Adjust an existing section
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Debug Logging
//
// UI.Password and SSO.ClientSecret are tagged `debugmap:"sensitive"`.
// DebugFields lays every section out for a structured log line:
//
//	zap.S().Infow("configuration loaded", cfg.DebugFields()...)
package config
