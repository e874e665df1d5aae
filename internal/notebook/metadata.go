package notebook

// Metadata is the top-level notebook metadata object.
type Metadata struct {
	Kernelspec   *Kernelspec
	LanguageInfo *LanguageInfo

	// Extra holds every other metadata key verbatim.
	Extra Value
}

// Kernelspec names the kernel a notebook was written for.
type Kernelspec struct {
	Name        string
	DisplayName string

	// Extra holds keys such as "language".
	Extra Value
}

// LanguageInfo describes the notebook's programming language.
type LanguageInfo struct {
	Name          string
	Version       *string
	MIMEType      *string
	FileExtension *string

	// Extra holds keys such as "codemirror_mode" or "pygments_lexer".
	Extra Value
}

// Equal reports whether two metadata values are equal in every tracked field.
func (m Metadata) Equal(o Metadata) bool {
	if !m.Extra.Equal(o.Extra) {
		return false
	}
	if (m.Kernelspec == nil) != (o.Kernelspec == nil) {
		return false
	}
	if m.Kernelspec != nil {
		a, b := m.Kernelspec, o.Kernelspec
		if a.Name != b.Name || a.DisplayName != b.DisplayName || !a.Extra.Equal(b.Extra) {
			return false
		}
	}
	if (m.LanguageInfo == nil) != (o.LanguageInfo == nil) {
		return false
	}
	if m.LanguageInfo != nil {
		a, b := m.LanguageInfo, o.LanguageInfo
		if a.Name != b.Name || !a.Extra.Equal(b.Extra) ||
			!equalOptString(a.Version, b.Version) ||
			!equalOptString(a.MIMEType, b.MIMEType) ||
			!equalOptString(a.FileExtension, b.FileExtension) {
			return false
		}
	}
	return true
}

func equalOptString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
