// Package client is a Go client for the dijkstar HTTP service.
//
// Each method maps to one server endpoint; see the server package for
// the corresponding handlers. Non-2xx responses are returned as
// *APIError, carrying the server's status code and detail message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a dijkstar server.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTimeout sets the default HTTP client's request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.http.Timeout = d }
}

// WithToken attaches a bearer token to every request, for servers
// configured with an auth secret.
func WithToken(token string) Option {
	return func(cl *Client) { cl.token = token }
}

// New creates a Client for the server at baseURL
// (e.g. "http://localhost:8000").
func New(baseURL string, opts ...Option) *Client {
	cl := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(cl)
	}

	return cl
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode  int    `json:"status_code"`
	Explanation string `json:"explanation"`
	Detail      string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s: %s", e.StatusCode, e.Explanation, e.Detail)
}

// GraphInfo holds node and edge counts of the server's graph.
type GraphInfo struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}

// PathResult is the find-path response.
type PathResult struct {
	Nodes     []string   `json:"nodes"`
	Edges     []any      `json:"edges"`
	Costs     []float64  `json:"costs"`
	TotalCost float64    `json:"total_cost"`
	Debug     *PathDebug `json:"debug,omitempty"`
}

// PathDebug carries search diagnostics when requested.
type PathDebug struct {
	Considered   int `json:"considered"`
	VisitedCount int `json:"visited_count"`
}

// FindPathOptions carries the optional find-path query parameters.
type FindPathOptions struct {
	// AnnexNodes are copied from the main graph into a temporary annex,
	// minus the edges between them.
	AnnexNodes []string

	// AnnexEdges are u:v:cost connectors added to the annex.
	AnnexEdges []AnnexEdge

	// Fields restricts the response to the named PathInfo fields.
	Fields []string

	// Debug asks the server for search diagnostics.
	Debug bool
}

// AnnexEdge is one temporary edge injected into a search.
type AnnexEdge struct {
	U    string
	V    string
	Cost float64
}

// GraphInfo fetches node and edge counts.
func (cl *Client) GraphInfo(ctx context.Context) (GraphInfo, error) {
	var info GraphInfo
	err := cl.get(ctx, "/graph-info", nil, &info)

	return info, err
}

// GetNode fetches a node's neighbor map.
func (cl *Client) GetNode(ctx context.Context, node string) (map[string]any, error) {
	var neighbors map[string]any
	err := cl.get(ctx, "/get-node/"+url.PathEscape(node), nil, &neighbors)

	return neighbors, err
}

// GetEdge fetches one edge payload.
func (cl *Client) GetEdge(ctx context.Context, u, v string) (any, error) {
	var payload any
	err := cl.get(ctx, "/get-edge/"+url.PathEscape(u)+"/"+url.PathEscape(v), nil, &payload)

	return payload, err
}

// FindPath requests the shortest path from start to dest.
func (cl *Client) FindPath(ctx context.Context, start, dest string, opts *FindPathOptions) (PathResult, error) {
	query := url.Values{}
	if opts != nil {
		if len(opts.AnnexNodes) > 0 {
			query.Set("annex_nodes", strings.Join(opts.AnnexNodes, ";"))
		}
		if len(opts.AnnexEdges) > 0 {
			items := make([]string, len(opts.AnnexEdges))
			for i, e := range opts.AnnexEdges {
				items[i] = fmt.Sprintf("%s:%s:%v", e.U, e.V, e.Cost)
			}
			query.Set("annex_edges", strings.Join(items, ";"))
		}
		if len(opts.Fields) > 0 {
			query.Set("fields", strings.Join(opts.Fields, ";"))
		}
		if opts.Debug {
			query.Set("debug", "true")
		}
	}

	var result PathResult
	path := "/find-path/" + url.PathEscape(start) + "/" + url.PathEscape(dest)
	err := cl.get(ctx, path, query, &result)

	return result, err
}

// LoadGraph replaces the server's graph with the JSON schema document
// read from r.
func (cl *Client) LoadGraph(ctx context.Context, r io.Reader) (string, error) {
	return cl.post(ctx, "/load-graph", "application/json", r)
}

// LoadGraphFile tells the server to load the named graph file from its
// own disk. fileType may be empty to detect from the extension.
func (cl *Client) LoadGraphFile(ctx context.Context, fileName, fileType string) (string, error) {
	form := url.Values{"file_name": {fileName}}
	if fileType != "" {
		form.Set("file_type", fileType)
	}

	return cl.post(ctx, "/load-graph", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
}

// ReloadGraph tells the server to reload its configured graph file.
func (cl *Client) ReloadGraph(ctx context.Context) (string, error) {
	return cl.post(ctx, "/reload-graph", "", nil)
}

// get issues a GET request and decodes the JSON response into out.
func (cl *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := cl.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	return cl.do(req, out)
}

// post issues a POST request and decodes the JSON response message.
func (cl *Client) post(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.baseURL+path, body)
	if err != nil {
		return "", err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	var message string
	if err := cl.do(req, &message); err != nil {
		return "", err
	}

	return message, nil
}

// do sends the request, maps error documents to *APIError, and decodes
// success bodies into out.
func (cl *Client) do(req *http.Request, out any) error {
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}
	resp, err := cl.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Explanation: http.StatusText(resp.StatusCode)}
		_ = json.Unmarshal(body, apiErr)
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}

	return nil
}
