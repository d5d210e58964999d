package main

import (
	"strings"
	"time"

	"github.com/fwojciec/sitegrab"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs []string `arg:"" name:"url" required:"" help:"Seed URLs to crawl"`

	Domain       []string `short:"d" help:"Followable domains (default: the hosts of the seed URLs)"`
	Ext          []string `short:"e" default:".pdf" help:"File extensions to download"`
	Out          string   `short:"o" default:"downloads" help:"Directory to save downloads to"`
	MaxDepth     int      `default:"10" help:"Maximum traversal depth (0 = unbounded)"`
	MaxDownloads int      `default:"1000" help:"Maximum number of downloads (0 = unbounded)"`
	KeepQuery    bool     `help:"Keep query strings on discovered links"`
	KeepFragment bool     `help:"Keep fragments on discovered links"`
	FollowPath   []string `help:"Followable path rules: PREFIX or SRC=>DST rewrite (default: all paths)"`
	IgnorePath   []string `help:"Path prefixes that are never followed"`
	Query        []string `help:"Extra query parameters injected into fetched URLs (key=value)"`
	Cookie       []string `help:"Cookies sent with every request (name=value)"`
	Header       []string `help:"Extra headers sent with every request (name:value)"`
	UserAgent    string   `help:"User-Agent header (default: a browser-like string)"`
	Sitemap      bool     `help:"Discover additional seeds from the site's sitemap"`

	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per request"`
	RPS         float64       `default:"2" help:"Requests per second per domain"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}

// Task builds the crawl task from the parsed flags.
// When no --domain is given, the followable set defaults to the hosts of
// the seed URLs.
func (c *CLI) Task() (*sitegrab.Task, error) {
	domains := c.Domain
	if len(domains) == 0 {
		seen := make(map[string]bool)
		for _, seed := range c.URLs {
			host := sitegrab.HostOf(seed)
			if host == "" {
				return nil, sitegrab.Errorf(sitegrab.EINVALID, "cannot derive domain from seed %q", seed)
			}
			if !seen[host] {
				seen[host] = true
				domains = append(domains, host)
			}
		}
	}

	rules, err := parsePathRules(c.FollowPath)
	if err != nil {
		return nil, err
	}

	params, err := parsePairs(c.Query, "=")
	if err != nil {
		return nil, err
	}

	return &sitegrab.Task{
		Seeds:        c.URLs,
		Domains:      domains,
		Match:        sitegrab.MatchExtensions(c.Ext...),
		PathRules:    rules,
		IgnorePaths:  c.IgnorePath,
		MaxDepth:     c.MaxDepth,
		MaxDownloads: c.MaxDownloads,
		KeepQuery:    c.KeepQuery,
		KeepFragment: c.KeepFragment,
		QueryParams:  params,
	}, nil
}

// parsePathRules parses --follow-path values: a plain prefix admits, and
// "SRC=>DST" admits and rewrites.
func parsePathRules(values []string) (sitegrab.PathRules, error) {
	var rules sitegrab.PathRules
	for _, v := range values {
		if src, dst, ok := strings.Cut(v, "=>"); ok {
			src, dst = strings.TrimSpace(src), strings.TrimSpace(dst)
			if src == "" || dst == "" {
				return nil, sitegrab.Errorf(sitegrab.EINVALID, "invalid path rule %q", v)
			}
			rules = append(rules, sitegrab.PathRule{Prefix: src, Rewrite: dst})
			continue
		}
		if v == "" {
			return nil, sitegrab.Errorf(sitegrab.EINVALID, "empty path rule")
		}
		rules = append(rules, sitegrab.PathRule{Prefix: v})
	}
	return rules, nil
}

// parsePairs parses repeated "key<sep>value" flag values, preserving order.
func parsePairs(values []string, sep string) ([]sitegrab.QueryParam, error) {
	var pairs []sitegrab.QueryParam
	for _, v := range values {
		key, value, ok := strings.Cut(v, sep)
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, sitegrab.Errorf(sitegrab.EINVALID, "invalid key%svalue pair %q", sep, v)
		}
		pairs = append(pairs, sitegrab.QueryParam{Key: key, Value: strings.TrimSpace(value)})
	}
	return pairs, nil
}

// pairMap converts repeated "key<sep>value" flag values into a map.
func pairMap(values []string, sep string) (map[string]string, error) {
	pairs, err := parsePairs(values, sep)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, nil
	}
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m, nil
}
