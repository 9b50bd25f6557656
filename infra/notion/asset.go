package notion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/radhian/remittance-docgen/consts"
)

const maxAssetRedirects = 5

var errBlockedAsset = errors.New("asset address not allowed")

// newAssetClient returns the client used for signature downloads. Unless
// allowLocal is set, only https is followed and connections to loopback,
// private, link-local or unspecified addresses are refused at dial time, which
// also covers redirects and hostnames resolving to such addresses.
func newAssetClient(timeout time.Duration, allowLocal bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !allowLocal {
		dialer := &net.Dialer{Timeout: timeout, Control: refuseLocalAddress}
		transport.DialContext = dialer.DialContext
		transport.Proxy = nil
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxAssetRedirects {
				return fmt.Errorf("stopped after %d redirects", maxAssetRedirects)
			}
			return checkAssetURL(req.URL, allowLocal)
		},
	}
}

func checkAssetURL(u *url.URL, allowLocal bool) error {
	switch {
	case u.Host == "":
		return fmt.Errorf("%w: missing host", errBlockedAsset)
	case u.Scheme == "https":
		return nil
	case u.Scheme == "http" && allowLocal:
		return nil
	default:
		return fmt.Errorf("%w: scheme %q", errBlockedAsset, u.Scheme)
	}
}

func refuseLocalAddress(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return fmt.Errorf("%w: %s", errBlockedAsset, address)
	}
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsMulticast() {
		return fmt.Errorf("%w: %s", errBlockedAsset, ip)
	}
	return nil
}

// FetchAsset downloads the bytes behind an asset URL. Asset URLs point
// outside the API, so no credentials are sent.
func (c *Client) FetchAsset(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid asset url: %v", consts.ErrInvalidRequest, err)
	}
	if err := checkAssetURL(req.URL, c.allowLocalAssets); err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrInvalidRequest, err)
	}

	resp, err := c.assetClient.Do(req)
	if err != nil {
		if errors.Is(err, errBlockedAsset) {
			return nil, fmt.Errorf("%w: fetch asset: %v", consts.ErrInvalidRequest, err)
		}
		return nil, fmt.Errorf("%w: fetch asset: %v", consts.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: fetch asset: HTTP %d", consts.ErrUpstream, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read asset: %v", consts.ErrUpstream, err)
	}
	if len(data) > maxAssetBytes {
		return nil, fmt.Errorf("%w: asset larger than %d bytes", consts.ErrInvalidRequest, maxAssetBytes)
	}
	return data, nil
}
