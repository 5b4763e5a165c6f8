package dynamic

type Registry struct {
	Pages []Page
}

func NewRegistry() Registry {
	return Registry{
		Pages: make([]Page, 0),
	}
}

func (registry *Registry) Add(page Page) {
	registry.Pages = append(registry.Pages, page)
}

// Find returns the first page registered for url. Duplicate
// registrations are allowed; later ones are shadowed.
func (registry *Registry) Find(url string) (Page, bool) {
	for _, page := range registry.Pages {
		if page.URL != url {
			continue
		}

		return page, true
	}

	return Page{}, false
}

// Clone copies the page list so a handler keeps a stable view while the
// host mutates the registry.
func (registry *Registry) Clone() Registry {
	pages := make([]Page, len(registry.Pages))
	copy(pages, registry.Pages)
	return Registry{Pages: pages}
}
