/*
Package main is the kubetags CLI: it lists the stable Kubernetes distribution
tags of an image repository that are newer than a baseline tag.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/woozymasta/kubetags"
	"github.com/woozymasta/kubetags/tagsource"
)

// Exit codes.
const (
	exitOK     = 0
	exitUsage  = 1
	exitInput  = 2
	exitSource = 3
)

type Options struct {
	// betteralign:ignore

	// Where tags come from
	OptionsSource OptionsSource `group:"Tag source"`
	// Baseline and selection
	OptionsSelect OptionsSelect `group:"Selection"`
	// Logging
	OptionsLog OptionsLog `group:"Logging"`

	Args struct {
		Repository string `positional-arg-name:"REPOSITORY" description:"Image repository, e.g. rancher/k3s or ghcr.io/org/image"`
	} `positional-args:"yes"`
}

type OptionsSource struct {
	Source   string        `short:"s" long:"source"    env:"KUBETAGS_SOURCE"    description:"Tag source" choice:"oci" choice:"hub" choice:"stdin" default:"oci"`
	PageSize int           `long:"page-size"           env:"KUBETAGS_PAGE_SIZE" description:"Tags per registry page (0 = registry default)" default:"100"`
	Insecure bool          `long:"insecure"            env:"KUBETAGS_INSECURE"  description:"Allow plain HTTP / unverified TLS registries (oci)"`
	HubURL   string        `long:"hub-url"             env:"KUBETAGS_HUB_URL"   description:"Docker Hub API endpoint (hub)" default:"https://hub.docker.com"`
	Timeout  time.Duration `short:"t" long:"timeout"   env:"KUBETAGS_TIMEOUT"   description:"Timeout for listing tags from a registry (oci, hub; stdin is read until EOF)" default:"2m"`
}

type OptionsSelect struct {
	Baseline     string `short:"b" long:"baseline"      env:"KUBETAGS_BASELINE"      description:"Currently deployed tag, e.g. v1.27.2-k3s1" required:"yes"`
	Depth        string `short:"D" long:"depth"         env:"KUBETAGS_DEPTH"         description:"Aggregation depth" choice:"patch" choice:"minor" choice:"major" choice:"latest" default:"patch"`
	SortMode     string `short:"S" long:"sort"          env:"KUBETAGS_SORT"          description:"Sort output tags" choice:"asc" choice:"desc" choice:"none" default:"asc"`
	Limit        int    `short:"n" long:"limit"         env:"KUBETAGS_LIMIT"         description:"Max number of output tags (<=0 = unlimited)" default:"0"`
	Include      string `short:"i" long:"include"       env:"KUBETAGS_INCLUDE"       description:"Regexp to keep tags (applied before parsing)"`
	Exclude      string `short:"e" long:"exclude"       env:"KUBETAGS_EXCLUDE"       description:"Regexp to drop tags (applied before parsing)"`
	Max          string `short:"x" long:"max"           env:"KUBETAGS_MAX"           description:"Upper bound tag; v1.29 keeps every 1.29.x tag, v1.29.2-k3s1 is an exact bound"`
	MaxExclusive bool   `short:"X" long:"max-exclusive" env:"KUBETAGS_MAX_EXCLUSIVE" description:"Exclude the upper bound itself"`
	Deduplicate  bool   `short:"d" long:"deduplicate"   env:"KUBETAGS_DEDUPLICATE"   description:"Collapse tags of equal version (v1.28 vs 1.28.0)"`
}

type OptionsLog struct {
	Level string `short:"l" long:"log-level" env:"KUBETAGS_LOG_LEVEL" description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warning" choice:"error" default:"warning"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt Options
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash|flags.AllowBoolValues)
	parser.LongDescription = `kubetags lists stable Kubernetes distribution release tags
(v1.28.3, v1.28.3-k3s1, v1.28.3-k3s1-rancher2) newer than a baseline tag.
Pre-releases (-alpha, -beta, -rc, -dev, -test, -ci, -debug) and "latest" are ignored.`
	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := newLogger(stderr, opt.OptionsLog.Level)

	selOpt, err := selectOptions(opt.OptionsSelect)
	if err != nil {
		logger.WithError(err).Error("invalid options")
		return exitInput
	}

	ctx, cancel := context.WithTimeout(context.Background(), opt.OptionsSource.Timeout)
	defer cancel()

	src, err := openSource(ctx, opt, stdin, logger)
	if err != nil {
		logger.WithError(err).Error("cannot open tag source")
		return exitInput
	}

	out, err := kubetags.Select(src, opt.OptionsSelect.Baseline, selOpt)
	if err != nil {
		if errors.Is(err, kubetags.ErrInvalidVersion) {
			logger.WithError(err).Error("invalid version")
			return exitInput
		}

		logger.WithError(err).Error("listing tags failed")
		return exitSource
	}

	logger.WithFields(log.Fields{
		"baseline": opt.OptionsSelect.Baseline,
		"newer":    len(out),
	}).Info("selection done")

	for _, t := range out {
		fmt.Fprintln(stdout, t)
	}

	return exitOK
}

func newLogger(w io.Writer, level string) *log.Entry {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	logger.SetLevel(lvl)

	return log.NewEntry(logger)
}

// selectOptions maps CLI flags to library options; regexps are compiled here.
func selectOptions(o OptionsSelect) (kubetags.Options, error) {
	opt := kubetags.Options{
		Max:          strings.TrimSpace(o.Max),
		MaxExclusive: o.MaxExclusive,
		Deduplicate:  o.Deduplicate,
		Depth:        kubetags.ParseDepth(o.Depth),
		Sort:         kubetags.ParseSort(o.SortMode),
		Limit:        o.Limit,
	}

	if s := strings.TrimSpace(o.Include); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			return opt, fmt.Errorf("include regexp: %w", err)
		}
		opt.Include = re
	}

	if s := strings.TrimSpace(o.Exclude); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			return opt, fmt.Errorf("exclude regexp: %w", err)
		}
		opt.Exclude = re
	}

	return opt, nil
}

func openSource(ctx context.Context, opt Options, stdin io.Reader, logger *log.Entry) (kubetags.TagSource, error) {
	repo := strings.TrimSpace(opt.Args.Repository)

	switch opt.OptionsSource.Source {
	case "stdin":
		return tagsource.Lines(stdin), nil

	case "hub":
		if repo == "" {
			return nil, errors.New("repository argument is required for the hub source")
		}

		hub, err := tagsource.NewHub(repo, tagsource.HubOptions{
			BaseURL:  opt.OptionsSource.HubURL,
			PageSize: opt.OptionsSource.PageSize,
			Logger:   logger,
		})
		if err != nil {
			return nil, err
		}

		return hub.Tags(ctx), nil

	default:
		if repo == "" {
			return nil, errors.New("repository argument is required for the oci source")
		}

		oci, err := tagsource.NewOCI(repo, tagsource.OCIOptions{
			PageSize:  opt.OptionsSource.PageSize,
			Insecure:  opt.OptionsSource.Insecure,
			UserAgent: "kubetags",
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return oci.Tags(ctx), nil
	}
}
