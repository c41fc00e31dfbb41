package scraper

import (
	"context"
	"fmt"
	"net"
	"net/url"
)

// validateURL checks an article URL before any request is made:
//   - only http and https schemes
//   - a non-empty host
//   - when denyPrivateIPs is set, every resolved address must be public
//
// Blocked ranges: loopback (127.0.0.0/8, ::1), private (10/8, 172.16/12,
// 192.168/16, fc00::/7), link-local (169.254/16, fe80::/10), unspecified.
func validateURL(ctx context.Context, u *url.URL, denyPrivateIPs bool) error {
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	// IP literals need no lookup
	if ip := net.ParseIP(hostname); ip != nil {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: %s", ErrPrivateIP, ip.String())
		}
		return nil
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", ErrInvalidURL, hostname, err)
	}
	for _, addr := range addrs {
		if isPrivateIP(addr.IP) {
			return fmt.Errorf("%w: hostname '%s' resolves to %s", ErrPrivateIP, hostname, addr.IP.String())
		}
	}

	return nil
}

// parseArticleURL parses and validates a caller supplied URL.
func parseArticleURL(ctx context.Context, raw string, denyPrivateIPs bool) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: parse error: %v", ErrInvalidURL, err)
	}
	if err := validateURL(ctx, u, denyPrivateIPs); err != nil {
		return nil, err
	}
	return u, nil
}

// isPrivateIP reports whether ip is loopback, private, link-local, or unspecified.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
