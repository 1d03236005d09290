package apidoc

import "net/url"

// ResolveBaseURL parses the documentation page URL and strips its fragment,
// giving the base that relative documentation links are joined against.
// Returns EINVALID unless the URL is absolute with a host (file URLs may
// omit the host).
func ResolveBaseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" {
		return nil, Errorf(EINVALID, "invalid URL %q: scheme required", rawURL)
	}
	if u.Host == "" && u.Scheme != "file" {
		return nil, Errorf(EINVALID, "invalid URL %q: host required", rawURL)
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u, nil
}
