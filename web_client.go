package tagpath

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

const defaultUserAgent = "tagpath/1.0"

type WebClient struct {
	chunkSize int
	maxBytes  int64
	client    *http.Client
	jar       *CookieJar
	userAgent string
}

func NewClient() *WebClient {
	jar := NewJar()

	return &WebClient{
		client: &http.Client{
			Jar: jar,
		},
		jar:       jar,
		chunkSize: 64000,
		maxBytes:  64 << 20,
		userAgent: defaultUserAgent,
	}
}

func (c *WebClient) SetChunkSize(size int) {
	if size > 0 {
		c.chunkSize = size
	}
}

func (c *WebClient) SetUserAgent(agent string) {
	c.userAgent = agent
}

// SetMaxBytes caps the size of a fetched document; 0 removes the cap.
func (c *WebClient) SetMaxBytes(n int64) {
	c.maxBytes = n
}

func (c *WebClient) GetHttpClient() *http.Client {
	return c.client
}

func (c *WebClient) Jar() *CookieJar {
	return c.jar
}

func (c *WebClient) setup(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

// Fetch downloads url in chunks of the configured size.
func (c *WebClient) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := c.setup(ctx, url)

	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	buf := make([]byte, c.chunkSize)
	data := make([]byte, 0, c.chunkSize)
	reader := bufio.NewReader(resp.Body)

	for {
		n, err := reader.Read(buf)
		data = append(data, buf[:n]...)

		if c.maxBytes > 0 && int64(len(data)) > c.maxBytes {
			return nil, fmt.Errorf("fetching %s: document exceeds %d bytes", url, c.maxBytes)
		}

		if err == io.EOF {
			return data, nil
		}

		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", url, err)
		}
	}
}

func (c *WebClient) FetchParse(ctx context.Context, url string, opts ...Option) (*Document, error) {
	data, err := c.Fetch(ctx, url)

	if err != nil {
		return nil, err
	}

	return Parse(data, opts...)
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load parses the document at location: "-" reads stdin, an http(s) URL
// is fetched with c, anything else is a file path.
func Load(ctx context.Context, c *WebClient, location string, stdin io.Reader, opts ...Option) (*Document, error) {
	switch {
	case location == "-":
		return ParseReader(stdin, opts...)
	case isURL(location):
		if c == nil {
			c = NewClient()
		}

		return c.FetchParse(ctx, location, opts...)
	}

	data, err := os.ReadFile(location)

	if err != nil {
		return nil, err
	}

	return Parse(data, opts...)
}
