package models

type FixtureKind string

const (
	FixtureKindAdvisory FixtureKind = "advisory"
	FixtureKindSBOM     FixtureKind = "sbom"
)

// Directory returns the fixtures sub-directory holding files of this kind.
func (k FixtureKind) Directory() string {
	switch k {
	case FixtureKindAdvisory:
		return "advisories"
	case FixtureKindSBOM:
		return "sboms"
	default:
		return string(k)
	}
}

// Plural is used in log lines ("SBOMs imported").
func (k FixtureKind) Plural() string {
	switch k {
	case FixtureKindAdvisory:
		return "Advisories"
	case FixtureKindSBOM:
		return "SBOMs"
	default:
		return string(k)
	}
}

// FixtureFile is a JSON document read from the fixtures directory.
// The filename doubles as the SBOM identifier on upload.
type FixtureFile struct {
	Kind     FixtureKind
	Filename string
	Path     string
	Content  []byte
}
