package docset

// Info holds the values written to the docset's Info.plist.
type Info struct {
	// Identifier is the CFBundleIdentifier value.
	Identifier string

	// Name is the CFBundleName value, shown in the viewer's docset list.
	Name string

	// PlatformFamily is the DocSetPlatformFamily value.
	PlatformFamily string

	// IndexFilePath is the docset-relative path of the landing page.
	IndexFilePath string

	// Keyword is the search keyword prefix (DashDocSetKeyword).
	Keyword string

	// FallbackURL is the online counterpart of the documentation
	// (DashDocSetFallbackURL).
	FallbackURL string

	// JavaScriptEnabled sets isJavaScriptEnabled. Offline bundles have
	// tracking scripts stripped, so this is normally false.
	JavaScriptEnabled bool
}

// Validate returns an error if the info contains invalid fields.
func (i *Info) Validate() error {
	if i.Identifier == "" {
		return Errorf(EINVALID, "docset identifier required")
	}
	if i.Name == "" {
		return Errorf(EINVALID, "docset name required")
	}
	return nil
}
