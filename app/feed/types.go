package feed

// Metadata describes the channel a dataset was imported from.
type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
	Author      string
}

// Channel describes the RSS document rendered for a result set.
type Channel struct {
	Title       string
	Link        string
	SelfLink    string
	Description string
	Generator   string
}
