package tagsource

import (
	"context"
	"net/http"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/woozymasta/kubetags"
)

// OCIOptions configures an OCI source.
type OCIOptions struct {
	// PageSize is the "n" hint sent with every tags/list request; 0 leaves it
	// to the registry.
	PageSize int

	// Insecure allows plain HTTP and unverified TLS for the registry.
	Insecure bool

	// Keychain resolves credentials. Defaults to authn.DefaultKeychain
	// (docker config, credential helpers).
	Keychain authn.Keychain

	// Transport overrides the HTTP transport.
	Transport http.RoundTripper

	// UserAgent is appended to the client's user agent.
	UserAgent string

	// Logger receives debug output; nil discards it.
	Logger *log.Entry
}

// OCI lists tags through the OCI distribution API (/v2/<name>/tags/list),
// which every Docker/OCI registry implements.
type OCI struct {
	repo   name.Repository
	puller *remote.Puller
	logger *log.Entry
}

// NewOCI returns a source for a repository reference such as "rancher/k3s"
// (Docker Hub), "ghcr.io/org/image" or "registry.local:5000/team/image".
func NewOCI(repository string, opts OCIOptions) (*OCI, error) {
	var nameOpts []name.Option
	if opts.Insecure {
		nameOpts = append(nameOpts, name.Insecure)
	}

	repo, err := name.NewRepository(repository, nameOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing repository %q", repository)
	}

	keychain := opts.Keychain
	if keychain == nil {
		keychain = authn.DefaultKeychain
	}

	remoteOpts := []remote.Option{remote.WithAuthFromKeychain(keychain)}
	if opts.PageSize > 0 {
		remoteOpts = append(remoteOpts, remote.WithPageSize(opts.PageSize))
	}

	if opts.Transport != nil {
		remoteOpts = append(remoteOpts, remote.WithTransport(opts.Transport))
	}

	if opts.UserAgent != "" {
		remoteOpts = append(remoteOpts, remote.WithUserAgent(opts.UserAgent))
	}

	puller, err := remote.NewPuller(remoteOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating registry client for %s", repo)
	}

	return &OCI{
		repo:   repo,
		puller: puller,
		logger: loggerOrDiscard(opts.Logger).WithFields(log.Fields{
			"source":     "oci",
			"repository": repo.String(),
		}),
	}, nil
}

// Repository returns the fully qualified repository name.
func (o *OCI) Repository() string {
	return o.repo.String()
}

// Tags returns a lazy sequence of the repository's tag names.
func (o *OCI) Tags(ctx context.Context) kubetags.TagSource {
	return func(yield func(string, error) bool) {
		o.logger.Debug("listing tags")

		lister, err := o.puller.Lister(ctx, o.repo)
		if err != nil {
			yield("", errors.Wrapf(err, "error listing tags of %s", o.repo))
			return
		}

		for page := 1; lister.HasNext(); page++ {
			tags, err := lister.Next(ctx)
			if err != nil {
				yield("", errors.Wrapf(err, "error listing tags of %s (page %d)", o.repo, page))
				return
			}

			o.logger.WithFields(log.Fields{
				"page": page,
				"tags": len(tags.Tags),
			}).Debug("got tag page")

			for _, t := range tags.Tags {
				if !yield(t, nil) {
					return
				}
			}
		}
	}
}
