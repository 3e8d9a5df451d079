package portal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"aluno-sync/internal/httpx"
)

// ErrInvalidCredentials is returned when the portal rejects the login.
var ErrInvalidCredentials = errors.New("portal: invalid user or password")

// User is the logged-in student as shown on the portal header.
type User struct {
	Nome      string
	Matricula string
}

// Client is an authenticated portal session. The two http.Clients share one
// cookie jar; the ajax endpoints answer a redirect to the login page when
// the session expires, and following it would silently hand back the wrong
// document, so those calls go through the non-following client.
type Client struct {
	BaseURL string
	Retry   httpx.RetryConfig

	http           *http.Client
	httpNoRedirect *http.Client
}

// New builds an unauthenticated client for the portal at baseURL.
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	timeout := 2 * time.Minute

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Retry:   httpx.DefaultRetryConfig(),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		httpNoRedirect: &http.Client{
			Jar:     jar,
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Login performs the j_security_check dance: an initial GET to obtain the
// session cookie, then the credential POST. Returns the student identity
// parsed from the landing page.
func (c *Client) Login(ctx context.Context, user, password string) (User, error) {
	if user == "" || password == "" {
		return User{}, errors.New("portal: missing user or password")
	}

	// First touch sets JSESSIONID.
	if _, _, err := c.get(ctx, c.BaseURL+"/aluno/", true); err != nil {
		return User{}, fmt.Errorf("portal: reach login page: %w", err)
	}

	form := url.Values{
		"j_username": {user},
		"j_password": {password},
	}
	resp, body, err := httpx.DoWithRetry(ctx, c.http, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.BaseURL+"/aluno/j_security_check", strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}, c.Retry)
	if err != nil {
		var herr *httpx.HTTPError
		if errors.As(err, &herr) && herr.StatusCode == http.StatusForbidden {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("portal: login: %w", err)
	}
	if resp.StatusCode == http.StatusForbidden {
		return User{}, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return User{}, fmt.Errorf("portal: login: unexpected status %d", resp.StatusCode)
	}

	doc, err := parsePage(body)
	if err != nil {
		return User{}, fmt.Errorf("portal: parse landing page: %w", err)
	}
	return parseUser(doc)
}

func parseUser(doc *html.Node) (User, error) {
	menu := findOne(doc, byID("menu"))
	if menu == nil {
		return User{}, errors.New("portal: landing page has no user menu")
	}
	button := findOne(menu, byTag("button"))
	if button == nil {
		return User{}, errors.New("portal: landing page has no user button")
	}

	matriculaNode := findOne(doc, byID("matricula"))
	if matriculaNode == nil {
		return User{}, errors.New("portal: landing page has no matrícula field")
	}

	return User{
		Nome:      text(button),
		Matricula: attr(matriculaNode, "value"),
	}, nil
}

// get fetches a page, optionally refusing redirects (the session-expiry
// signal on ajax endpoints), and returns the parsed document body.
func (c *Client) get(ctx context.Context, pageURL string, followRedirects bool) ([]byte, *http.Response, error) {
	client := c.http
	if !followRedirects {
		client = c.httpNoRedirect
	}

	resp, body, err := httpx.DoWithRetry(ctx, client, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		return req, nil
	}, c.Retry)
	if err != nil {
		return nil, resp, err
	}
	return body, resp, nil
}

// getDoc is get + HTML parse.
func (c *Client) getDoc(ctx context.Context, pageURL string, followRedirects bool) (*html.Node, error) {
	body, _, err := c.get(ctx, pageURL, followRedirects)
	if err != nil {
		return nil, err
	}
	doc, err := parsePage(body)
	if err != nil {
		return nil, fmt.Errorf("portal: parse %s: %w", pageURL, err)
	}
	return doc, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:141.0) Gecko/20100101 Firefox/141.0")
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Accept-Language", "pt-BR")
	// Keeps the CPA evaluation interstitial from hijacking the session.
	req.Header.Set("Referer", "https://cpa.cefet-rj.br/")
}
