// Package handlers implements the HTTP API of the local mock services.
//
// The mock stands in for the ingestion services and the SPOG search API when
// the suite runs with infra mode "local". Every route sits under /api/v1 and
// requires a bearer token signed by the mock SSO realm.
//
//	┌────────┬──────────────────┬─────────────────────────────────────────┐
//	│ Method │ Endpoint         │ Description                             │
//	├────────┼──────────────────┼─────────────────────────────────────────┤
//	│ POST   │ /vex             │ Store an advisory (id = tracking id)    │
//	│ POST   │ /sbom?id=        │ Store an SBOM under id                  │
//	│ GET    │ /sbom/search     │ Search SBOMs (q, offset, limit)         │
//	│ GET    │ /advisory/search │ Search advisories (q, offset, limit)    │
//	└────────┴──────────────────┴─────────────────────────────────────────┘
//
// # Error Mapping
//
//	┌──────────────────────────────────┬────────┐
//	│ Condition                        │ Status │
//	├──────────────────────────────────┼────────┤
//	│ missing or invalid bearer token  │ 401    │
//	│ missing id on /sbom              │ 400    │
//	│ body is not a JSON object        │ 400    │
//	│ invalid offset or limit          │ 400    │
//	│ store failure                    │ 500    │
//	└──────────────────────────────────┴────────┘
//
// Error bodies are v1.ErrorResponse.
package handlers
