package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// channelBaseURL returns the websocket root for live update channels. An
// explicit override wins; otherwise the API base URL is reused with its
// scheme switched to ws/wss and a trailing "/api" segment removed, since the
// backend serves websockets beside the API rather than under it.
func channelBaseURL(apiBaseURL, override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		u, err := url.Parse(strings.TrimSpace(override))
		if err != nil {
			return "", err
		}
		if (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
			return "", fmt.Errorf("channel address must be a ws:// or wss:// url")
		}
		return strings.TrimRight(u.String(), "/"), nil
	}

	base, err := normalizeBaseURL(apiBaseURL)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(strings.TrimRight(u.Path, "/"), "/api")

	return strings.TrimRight(u.String(), "/"), nil
}
