package apidoc

// NavigationIndex maps a section name to its endpoint names and their
// absolute documentation URLs. It is built once per extraction and only
// read afterwards.
type NavigationIndex map[string]map[string]string

// SetSection replaces the links of a section with an empty set.
func (idx NavigationIndex) SetSection(section string) {
	idx[section] = make(map[string]string)
}

// Set records the documentation link of an endpoint, overwriting any
// earlier link for the same pair.
func (idx NavigationIndex) Set(section, endpoint, link string) {
	links, ok := idx[section]
	if !ok {
		links = make(map[string]string)
		idx[section] = links
	}
	links[endpoint] = link
}

// Lookup returns the documentation link of an endpoint.
// Returns ELOOKUP if the section or the endpoint is not indexed.
func (idx NavigationIndex) Lookup(section, endpoint string) (string, error) {
	links, ok := idx[section]
	if !ok {
		return "", Errorf(ELOOKUP, "navigation has no section %q", section)
	}
	link, ok := links[endpoint]
	if !ok {
		return "", Errorf(ELOOKUP, "navigation has no endpoint %q in section %q", endpoint, section)
	}
	return link, nil
}
