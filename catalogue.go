package apidoc

// Endpoint is a single documented API operation.
type Endpoint struct {
	Name        string
	Method      string
	URI         string
	Link        string
	Description []DescriptionItem
}

// Section is an ordered set of endpoints keyed by name.
//
// Endpoints keep the position of their first insertion. Setting an endpoint
// whose name is already present replaces the stored record in place.
type Section struct {
	Name string

	names     []string
	endpoints map[string]*Endpoint
}

// NewSection returns an empty section.
func NewSection(name string) *Section {
	return &Section{
		Name:      name,
		endpoints: make(map[string]*Endpoint),
	}
}

// Set adds ep, replacing any endpoint with the same name.
func (s *Section) Set(ep *Endpoint) {
	if _, ok := s.endpoints[ep.Name]; !ok {
		s.names = append(s.names, ep.Name)
	}
	s.endpoints[ep.Name] = ep
}

// Get returns the endpoint with the given name.
func (s *Section) Get(name string) (*Endpoint, bool) {
	ep, ok := s.endpoints[name]
	return ep, ok
}

// Endpoints returns the endpoints in document order.
func (s *Section) Endpoints() []*Endpoint {
	eps := make([]*Endpoint, 0, len(s.names))
	for _, name := range s.names {
		eps = append(eps, s.endpoints[name])
	}
	return eps
}

// Len returns the number of endpoints.
func (s *Section) Len() int {
	return len(s.names)
}

// Catalogue is the ordered set of documentation sections keyed by name,
// with the same replace-in-place policy as Section.
type Catalogue struct {
	names    []string
	sections map[string]*Section
}

// NewCatalogue returns an empty catalogue.
func NewCatalogue() *Catalogue {
	return &Catalogue{sections: make(map[string]*Section)}
}

// Set adds s, replacing any section with the same name.
func (c *Catalogue) Set(s *Section) {
	if _, ok := c.sections[s.Name]; !ok {
		c.names = append(c.names, s.Name)
	}
	c.sections[s.Name] = s
}

// Get returns the section with the given name.
func (c *Catalogue) Get(name string) (*Section, bool) {
	s, ok := c.sections[name]
	return s, ok
}

// Sections returns the sections in document order.
func (c *Catalogue) Sections() []*Section {
	ss := make([]*Section, 0, len(c.names))
	for _, name := range c.names {
		ss = append(ss, c.sections[name])
	}
	return ss
}

// Len returns the number of sections.
func (c *Catalogue) Len() int {
	return len(c.names)
}

// EndpointCount returns the number of endpoints across all sections.
func (c *Catalogue) EndpointCount() int {
	var n int
	for _, s := range c.sections {
		n += s.Len()
	}
	return n
}
