package licenses

// A Key identifies a detected license. Concrete keys are lower-cased license
// identifiers (e.g. "mit"); None and Other are the only sentinels.
type Key string

const (
	// None means no license evidence was found.
	None = Key("none")
	// Other means license evidence was found but did not resolve to a single
	// concrete key.
	Other = Key("other")
)

// Resolved reports whether k names a concrete license.
func (k Key) Resolved() bool {
	return k != None && k != Other
}
