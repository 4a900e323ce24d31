package tagsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"
	"github.com/siderolabs/go-retry/retry"
	log "github.com/sirupsen/logrus"

	"github.com/woozymasta/kubetags"
)

const (
	// DefaultHubURL is the Docker Hub API endpoint.
	DefaultHubURL = "https://hub.docker.com"

	defaultHubPageSize     = 100
	defaultHubRetryTimeout = 30 * time.Second
	defaultHubRetryUnit    = time.Second
)

// HubOptions configures a Docker Hub source.
type HubOptions struct {
	// BaseURL of the Hub API. Defaults to DefaultHubURL.
	BaseURL string

	// PageSize is the page_size query parameter (Hub caps it at 100).
	PageSize int

	// Client performs the requests. Defaults to a pooled go-cleanhttp client.
	Client *http.Client

	// RetryTimeout bounds the time spent retrying a single page after network
	// errors, 429 and 5xx responses. Defaults to 30s.
	RetryTimeout time.Duration

	// RetryUnit is the base backoff step. Defaults to 1s.
	RetryUnit time.Duration

	// Logger receives debug output; nil discards it.
	Logger *log.Entry
}

// Hub lists tags through the Docker Hub repositories API
// (/v2/repositories/<namespace>/<name>/tags), following "next" links.
type Hub struct {
	namespace    string
	name         string
	baseURL      string
	pageSize     int
	client       *http.Client
	retryTimeout time.Duration
	retryUnit    time.Duration
	logger       *log.Entry
}

// hubTagsPage is a single page of the Hub tags API.
type hubTagsPage struct {
	Count   int    `json:"count"`
	Next    string `json:"next"`
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// NewHub returns a source for a Docker Hub repository such as "rancher/k3s",
// "docker.io/rancher/k3s" or "alpine" (official images live in "library").
func NewHub(repository string, opts HubOptions) (*Hub, error) {
	namespace, repoName, err := splitHubRepository(repository)
	if err != nil {
		return nil, err
	}

	h := &Hub{
		namespace:    namespace,
		name:         repoName,
		baseURL:      strings.TrimSuffix(opts.BaseURL, "/"),
		pageSize:     opts.PageSize,
		client:       opts.Client,
		retryTimeout: opts.RetryTimeout,
		retryUnit:    opts.RetryUnit,
	}

	if h.baseURL == "" {
		h.baseURL = DefaultHubURL
	}

	if h.pageSize <= 0 || h.pageSize > defaultHubPageSize {
		h.pageSize = defaultHubPageSize
	}

	if h.client == nil {
		h.client = cleanhttp.DefaultPooledClient()
	}

	if h.retryTimeout <= 0 {
		h.retryTimeout = defaultHubRetryTimeout
	}

	if h.retryUnit <= 0 {
		h.retryUnit = defaultHubRetryUnit
	}

	h.logger = loggerOrDiscard(opts.Logger).WithFields(log.Fields{
		"source":     "hub",
		"repository": h.Repository(),
	})

	return h, nil
}

// splitHubRepository maps a repository reference to Hub namespace and name.
func splitHubRepository(repository string) (string, string, error) {
	r := strings.TrimSpace(repository)
	for _, prefix := range []string{"docker.io/", "index.docker.io/", "registry-1.docker.io/"} {
		r = strings.TrimPrefix(r, prefix)
	}

	if r == "" || strings.ContainsAny(r, ":@") {
		return "", "", errors.Errorf("invalid Docker Hub repository %q", repository)
	}

	parts := strings.Split(r, "/")
	switch {
	case len(parts) == 1:
		return "library", parts[0], nil
	case len(parts) == 2 && !strings.ContainsAny(parts[0], ".") && parts[0] != "" && parts[1] != "":
		return parts[0], parts[1], nil
	default:
		return "", "", errors.Errorf("%q is not a Docker Hub repository", repository)
	}
}

// Repository returns "<namespace>/<name>".
func (h *Hub) Repository() string {
	return h.namespace + "/" + h.name
}

func (h *Hub) firstPageURL() string {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("page_size", fmt.Sprint(h.pageSize))

	return fmt.Sprintf(
		"%s/v2/repositories/%s/%s/tags?%s",
		h.baseURL,
		url.PathEscape(h.namespace),
		url.PathEscape(h.name),
		q.Encode(),
	)
}

// Tags returns a lazy sequence of the repository's tag names.
func (h *Hub) Tags(ctx context.Context) kubetags.TagSource {
	return func(yield func(string, error) bool) {
		next := h.firstPageURL()

		for page := 1; next != ""; page++ {
			var body hubTagsPage
			if err := h.fetchPage(ctx, next, &body); err != nil {
				yield("", errors.Wrapf(err, "error listing tags of %s (page %d)", h.Repository(), page))
				return
			}

			h.logger.WithFields(log.Fields{
				"page":  page,
				"tags":  len(body.Results),
				"total": body.Count,
			}).Debug("got tag page")

			if len(body.Results) == 0 {
				return
			}

			for _, r := range body.Results {
				if !yield(r.Name, nil) {
					return
				}
			}

			next = body.Next
		}
	}
}

// fetchPage GETs a page, retrying network errors, 429 and 5xx with
// exponential backoff. Any other status fails immediately.
func (h *Hub) fetchPage(ctx context.Context, pageURL string, out *hubTagsPage) error {
	return retry.Exponential(
		h.retryTimeout,
		retry.WithUnits(h.retryUnit),
		retry.WithJitter(h.retryUnit/10),
	).RetryWithContext(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return errors.Wrap(err, "error building request")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := h.client.Do(req)
		if err != nil {
			h.logger.WithError(err).Debug("request failed, retrying")
			return retry.ExpectedError(err)
		}
		defer resp.Body.Close() // nolint: errcheck

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
			h.logger.WithField("status", resp.StatusCode).Debug("transient response, retrying")
			return retry.ExpectedErrorf("unexpected response status %s", resp.Status)
		default:
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return errors.Errorf("unexpected response status %s: %s", resp.Status, strings.TrimSpace(string(msg)))
		}

		*out = hubTagsPage{}
		return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "error decoding tags page")
	})
}
