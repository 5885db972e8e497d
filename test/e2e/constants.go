package main

// SBOMs shipped in fixtures/sboms.
var sbomList = struct {
	UBI9                SBOM
	SeedwingJavaExample SBOM
}{
	UBI9:                SBOM{Name: "ubi9-container"},
	SeedwingJavaExample: SBOM{Name: "seedwing-java-example"},
}

type SBOM struct {
	Name string
}

// Labels of the SBOM list filter panel.
const (
	filterContainer = "Container"
	createdLast30   = "Last 30 days"
	createdThisYear = "This year"

	nonExistentSBOM = "non existent sbom"
)
