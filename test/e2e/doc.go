/*
Package main provides the end-to-end suite for the SPOG UI.

# Package Structure

	test/e2e/
	├── main.go            Entry point: flags, config, InfraManager setup, Ginkgo runner
	├── suite.go           BeforeSuite import hook, AfterSuite teardown, browser helper
	├── constants.go       Fixture names and filter labels used by the specs
	├── sboms_filter.go    SBOM page filter specs (label "ui")
	├── import.go          Fixture import specs (label "import")
	├── doc.go             This file
	├── fixtures/
	│   ├── advisories/    CSAF documents uploaded to the advisory service
	│   └── sboms/         SPDX/CycloneDX documents uploaded to the SBOM service
	├── infra/
	│   ├── infra.go       InfraManager interface + Endpoints + Realm
	│   ├── external.go    ExternalInfraManager (no-op, stack deployed elsewhere)
	│   ├── local.go       LocalInfraManager (in-process SSO and services)
	│   └── oidc.go        SSOServer: client-credentials token endpoint + JWKS
	└── service/
	    └── service.go     SpogSvc: authenticated lookups against the SPOG API

# Run Flow

Before any spec runs, the suite starts the infrastructure, requests a token
from the SSO realm and uploads every fixture: advisories to the advisory
service and SBOMs to the SBOM service, concurrently. A summary is printed to
the Ginkgo writer. Upload failures are logged and do not abort the run unless
runner.failOnImportError is set. The suite then waits for indexing, either a
fixed delay (runner.indexWait, or runner.interactiveIndexWait with
-interactive) or, with runner.pollIndex, until every imported SBOM is
searchable.

When a UI spec fails, the page is saved as a PNG under runner.screenshotDir
and the file path is attached to the spec report.

# InfraManager

	type InfraManager interface {
	    StartSSO()      / StopSSO()
	    StartServices() / StopServices()
	    Endpoints()
	}

Two implementations:
  - ExternalInfraManager: no-op, endpoints come from the configuration (default).
  - LocalInfraManager: mock SSO realm plus one in-process server exposing the
    ingestion and search APIs backed by an in-memory DuckDB.

Selected via -infra-mode ("external" or "local"). The local mode has no UI,
so it is meant for the import specs:

	go run ./test/e2e -infra-mode local -label-filter import

# Configuration

Every key can be set in a YAML file (-config) or through SPOG_* environment
variables, see internal/config. Flags override both.
*/
package main
