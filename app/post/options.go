package post

// DeriveOptions collects the distinct categories and authors of items,
// each listed once in order of first appearance.
func DeriveOptions(items []Item) Options {
	opts := Options{
		Categories: []string{},
		Authors:    []string{},
	}

	seenCategories := make(map[string]struct{})
	seenAuthors := make(map[string]struct{})

	for _, item := range items {
		if _, ok := seenCategories[item.Category]; !ok {
			seenCategories[item.Category] = struct{}{}
			opts.Categories = append(opts.Categories, item.Category)
		}
		if _, ok := seenAuthors[item.Author]; !ok {
			seenAuthors[item.Author] = struct{}{}
			opts.Authors = append(opts.Authors, item.Author)
		}
	}

	return opts
}
