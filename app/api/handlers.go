package api

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/blog-search/app/feed"
	"github.com/lysyi3m/blog-search/app/post"
)

const pageTitle = "Blog Search"

func NewHandler(dataset *post.Dataset, filterer FiltererInterface, generator GeneratorInterface,
	previewLength int, baseUrl, version string) *Handler {
	return &Handler{
		dataset:       dataset,
		filterer:      filterer,
		generator:     generator,
		previewLength: previewLength,
		baseUrl:       strings.TrimSuffix(baseUrl, "/"),
		version:       version,
	}
}

// bindCriteria reads q, category and author from the query string.
func (h *Handler) bindCriteria(c *gin.Context) (post.Criteria, bool) {
	var criteria post.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		slog.Debug("Invalid query parameters", "query", c.Request.URL.RawQuery, "error", err)
		return post.Criteria{}, false
	}
	return criteria, true
}

func (h *Handler) GetIndex(c *gin.Context) {
	criteria, ok := h.bindCriteria(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid query parameters")
		return
	}

	items := h.dataset.All()
	filtered := h.filterer.Run(items, criteria)
	h.logExclusions(c, items, criteria)

	posts := make([]postView, 0, len(filtered))
	for _, item := range filtered {
		posts = append(posts, postView{Item: item, Preview: post.Preview(item.Content, h.previewLength)})
	}

	feedURL := "/feed.xml"
	if c.Request.URL.RawQuery != "" {
		feedURL += "?" + c.Request.URL.RawQuery
	}

	c.HTML(http.StatusOK, "index.html", indexPage{
		Title:     pageTitle,
		FeedURL:   feedURL,
		Criteria:  criteria,
		Options:   post.DeriveOptions(items),
		Posts:     posts,
		ShowReset: criteria.Active(),
		NoResults: post.NoResultsMessage,
		Summary:   post.Summary(len(filtered)),
	})
}

func (h *Handler) APIListPosts(c *gin.Context) {
	criteria, ok := h.bindCriteria(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	items := h.dataset.All()
	filtered := h.filterer.Run(items, criteria)
	h.logExclusions(c, items, criteria)

	c.JSON(http.StatusOK, PostsResponse{
		Posts:    filtered,
		Count:    len(filtered),
		Summary:  post.Summary(len(filtered)),
		Criteria: criteria,
	})
}

// logExclusions reports at debug level why each excluded post did not match.
func (h *Handler) logExclusions(c *gin.Context, items []post.Item, criteria post.Criteria) {
	if !criteria.Active() || !slog.Default().Enabled(c.Request.Context(), slog.LevelDebug) {
		return
	}

	for _, item := range items {
		if reason := h.filterer.Explain(item, criteria); reason != "" {
			slog.Debug("Post excluded", "id", item.ID, "reason", reason)
		}
	}
}

func (h *Handler) APIGetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, post.DeriveOptions(h.dataset.All()))
}

func (h *Handler) GetFeed(c *gin.Context) {
	criteria, ok := h.bindCriteria(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	filtered := h.filterer.Run(h.dataset.All(), criteria)

	rss, err := h.generator.Run(h.channel(c, criteria), filtered)
	if err != nil {
		slog.Error("RSS generation error", "query", c.Request.URL.RawQuery, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(filtered)))

	c.String(http.StatusOK, rss)
}

func (h *Handler) channel(c *gin.Context, criteria post.Criteria) feed.Channel {
	baseUrl := h.baseUrl
	if baseUrl == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		baseUrl = scheme + "://" + c.Request.Host
	}

	query := url.Values{}
	if criteria.SearchTerm != "" {
		query.Set("q", criteria.SearchTerm)
	}
	if criteria.Category != "" {
		query.Set("category", criteria.Category)
	}
	if criteria.Author != "" {
		query.Set("author", criteria.Author)
	}

	selfLink := baseUrl + "/feed.xml"
	link := baseUrl + "/"
	if encoded := query.Encode(); encoded != "" {
		selfLink += "?" + encoded
		link += "?" + encoded
	}

	return feed.Channel{
		Title:       pageTitle,
		Link:        link,
		SelfLink:    selfLink,
		Description: describeCriteria(criteria),
		Generator:   pageTitle + " " + h.version,
	}
}

func describeCriteria(criteria post.Criteria) string {
	if !criteria.Active() {
		return "All posts"
	}

	var parts []string
	if criteria.SearchTerm != "" {
		parts = append(parts, "matching '"+criteria.SearchTerm+"'")
	}
	if criteria.Category != "" {
		parts = append(parts, "in "+criteria.Category)
	}
	if criteria.Author != "" {
		parts = append(parts, "by "+criteria.Author)
	}
	return "Posts " + strings.Join(parts, ", ")
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"posts":     h.dataset.Len(),
		"version":   h.version,
	})
}
