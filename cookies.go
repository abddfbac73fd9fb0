package tagpath

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"sync"
)

// CookieJar remembers the cookies of every document fetch so a session
// can be written to disk and restored later.
type CookieJar struct {
	jar     *cookiejar.Jar
	cookies map[string][]*http.Cookie
	mu      sync.Mutex
}

func NewJar() *CookieJar {
	// cookiejar.New only fails on a broken PublicSuffixList, nil has none
	jar, _ := cookiejar.New(nil)

	return &CookieJar{jar: jar, cookies: make(map[string][]*http.Cookie)}
}

func (j *CookieJar) Save(filename string) error {
	j.mu.Lock()
	data, err := json.Marshal(j.cookies)
	j.mu.Unlock()

	if err != nil {
		return fmt.Errorf("encoding cookies: %w", err)
	}

	return os.WriteFile(filename, data, 0600)
}

// Load restores cookies written by Save. A missing file is not an error.
func (j *CookieJar) Load(filename string) error {
	data, err := os.ReadFile(filename)

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	var all map[string][]*http.Cookie

	if err = json.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("decoding cookies from %s: %w", filename, err)
	}

	for rawURL, cookies := range all {
		u, err := url.Parse(rawURL)

		if err != nil {
			return err
		}

		j.SetCookies(u, cookies)
	}

	return nil
}

func (j *CookieJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

func (j *CookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	j.cookies[u.String()] = cookies
	j.mu.Unlock()

	j.jar.SetCookies(u, cookies)
}
