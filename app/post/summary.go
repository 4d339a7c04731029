package post

import (
	"strconv"
)

const NoResultsMessage = "No posts found matching your search criteria."

const DefaultPreviewLength = 150

// ResultLabel pluralizes a result count: singular only when count is exactly 1.
func ResultLabel(count int) string {
	if count == 1 {
		return "1 result"
	}
	return strconv.Itoa(count) + " results"
}

func Summary(count int) string {
	return ResultLabel(count) + " found"
}

// Preview returns the first n runes of content followed by an ellipsis.
func Preview(content string, n int) string {
	if n <= 0 {
		n = DefaultPreviewLength
	}

	runes := []rune(content)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}
