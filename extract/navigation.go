package extract

import (
	"net/url"

	"github.com/fwojciec/apidoc"
)

// BuildNavigationIndex maps every endpoint listed in the navigation region to
// its documentation URL, resolved against base.
//
// Groups without a label link are skipped. A label seen twice replaces the
// earlier group's links; a duplicate endpoint within a group keeps the last
// link. Returns ESTRUCTURE for an endpoint link without href and EINVALID
// for an href that is not a URL reference.
func BuildNavigationIndex(root *apidoc.Element, base *url.URL) (apidoc.NavigationIndex, error) {
	idx := make(apidoc.NavigationIndex)
	for _, group := range root.FindAll(IsNavigationGroup) {
		label := group.Find(IsGroupLink)
		if label == nil {
			continue
		}
		section := apidoc.Normalize(label.Text())
		idx.SetSection(section)

		for _, link := range group.FindAll(IsActionLink) {
			name := apidoc.Normalize(link.Text())
			href, ok := link.Attr("href")
			if !ok {
				return nil, apidoc.Errorf(apidoc.ESTRUCTURE, "navigation link %q in %q has no href", name, section)
			}
			ref, err := url.Parse(href)
			if err != nil {
				return nil, apidoc.Errorf(apidoc.EINVALID, "navigation link %q in %q: invalid href %q: %v", name, section, href, err)
			}
			idx.Set(section, name, base.ResolveReference(ref).String())
		}
	}
	return idx, nil
}
