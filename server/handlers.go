// Package server: endpoint handlers.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/wylee/dijkstar/core"
	"github.com/wylee/dijkstar/graphio"
	"github.com/wylee/dijkstar/pathfind"
)

// handleGraphInfo reports node and edge counts of the loaded graph.
func (s *Server) handleGraphInfo(w http.ResponseWriter, _ *http.Request) {
	graph := s.currentGraph()
	writeJSON(w, http.StatusOK, map[string]int{
		"node_count": graph.NodeCount(),
		"edge_count": graph.EdgeCount(),
	})
}

// handleGetNode returns a node's neighbor map.
func (s *Server) handleGetNode(w http.ResponseWriter, r *http.Request) {
	node := r.PathValue("node")
	neighbors, err := s.currentGraph().GetNode(node)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("node %s not found in graph", node))
		return
	}
	writeJSON(w, http.StatusOK, neighbors)
}

// handleGetEdge returns one edge payload.
func (s *Server) handleGetEdge(w http.ResponseWriter, r *http.Request) {
	u, v := r.PathValue("u"), r.PathValue("v")
	payload, err := s.currentGraph().GetEdge(u, v)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("edge (%s, %s) not found in graph", u, v))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// handleLoadGraph replaces the loaded graph. Three cases:
//
//  1. form data with file_name (and optional file_type): load that
//     file from disk
//  2. a document in the request body: load that graph data
//  3. neither: fall back to the configured graph file or a new graph
func (s *Server) handleLoadGraph(w http.ResponseWriter, r *http.Request) {
	if s.cfg.ReadOnly {
		writeError(w, http.StatusForbidden, "graph is read only")
		return
	}

	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		fileName := r.PostFormValue("file_name")
		fileType := r.PostFormValue("file_type")
		if fileName == "" {
			writeError(w, http.StatusBadRequest, "file_name is required")
			return
		}
		graph, err := s.loadGraphFile(fileName, fileType)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.setGraph(graph)
		message := fmt.Sprintf("Graph loaded from %s", fileName)
		if fileType != "" {
			message = fmt.Sprintf("%s (%s)", message, fileType)
		}
		writeJSON(w, http.StatusOK, message)
		return
	}

	if r.ContentLength != 0 {
		graph, err := graphio.Decode[any](r.Body, graphio.FormatJSON)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.setGraph(graph)
		writeJSON(w, http.StatusOK, "Graph loaded from data")
		return
	}

	s.reloadFromSettings(w)
}

// handleReloadGraph reloads the graph file named in the settings, or
// swaps in a new graph when none is configured.
func (s *Server) handleReloadGraph(w http.ResponseWriter, _ *http.Request) {
	if s.cfg.ReadOnly {
		writeError(w, http.StatusForbidden, "graph is read only")
		return
	}
	s.reloadFromSettings(w)
}

func (s *Server) reloadFromSettings(w http.ResponseWriter) {
	if s.cfg.GraphFile == "" {
		s.setGraph(core.New[string, any]())
		writeJSON(w, http.StatusOK, "Created a new graph since no graph file was specified")
		return
	}
	graph, err := s.loadGraphFile(s.cfg.GraphFile, s.cfg.GraphFormat)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.setGraph(graph)
	writeJSON(w, http.StatusOK, fmt.Sprintf("Graph reloaded from %s", s.cfg.GraphFile))
}

// handleFindPath runs a shortest-path search between two nodes.
//
// Query parameters:
//
//	annex_nodes  semicolon-separated nodes copied from the main graph
//	             into a temporary annex, minus the edges between them
//	annex_edges  semicolon-separated u:v:cost triples added to the annex
//	fields       semicolon-separated PathInfo fields to include
//	debug        include search diagnostics in the response
func (s *Server) handleFindPath(w http.ResponseWriter, r *http.Request) {
	graph := s.currentGraph()
	start := r.PathValue("start")
	dest := r.PathValue("dest")
	query := r.URL.Query()

	annex, err := buildAnnex(graph, query.Get("annex_nodes"), query.Get("annex_edges"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	inGraph := func(n string) bool {
		return graph.HasNode(n) || (annex != nil && annex.HasNode(n))
	}
	if !inGraph(start) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("node %s not present in graph", start))
		return
	}
	if !inGraph(dest) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("node %s not present in graph", dest))
		return
	}

	debug := false
	if raw := query.Get("debug"); raw != "" {
		var parseErr error
		if debug, parseErr = strconv.ParseBool(raw); parseErr != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed debug value %q", raw))
			return
		}
	}

	search := pathfind.Search[string, any]{Annex: annex, Debug: debug}
	result, err := search.ShortestPathsTo(graph, start, dest)
	var info pathfind.PathInfo[string, any]
	if err == nil {
		info, err = pathfind.ExtractPath(result, dest)
	}
	switch {
	case errors.Is(err, pathfind.ErrNoPath):
		s.metrics.searchesTotal.WithLabelValues("no_path").Inc()
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		s.metrics.searchesTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.searchesTotal.WithLabelValues("found").Inc()

	response := map[string]any{
		"nodes":      info.Nodes,
		"edges":      info.Edges,
		"costs":      info.Costs,
		"total_cost": info.TotalCost,
	}
	if debug {
		response["debug"] = map[string]any{
			"considered":    result.Debug.Considered,
			"visited_count": result.Debug.VisitedCount,
		}
	}

	if fields := strings.TrimSpace(query.Get("fields")); fields != "" {
		filtered := make(map[string]any)
		for _, name := range strings.Split(fields, ";") {
			name = strings.TrimSpace(name)
			value, known := response[name]
			if !known {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid PathInfo field name: %s", name))
				return
			}
			filtered[name] = value
		}
		response = filtered
	}

	writeJSON(w, http.StatusOK, response)
}

// buildAnnex assembles the temporary annex graph for one search.
// Nodes named in annexNodes are copied with their outgoing edges,
// except edges leading to other named nodes; annexEdges adds u:v:cost
// connectors on top.
func buildAnnex(graph *core.Graph[string, any], annexNodes, annexEdges string) (*core.Graph[string, any], error) {
	var annex *core.Graph[string, any]

	if annexNodes != "" {
		annex = core.New[string, any]()
		names := strings.Split(annexNodes, ";")
		member := make(map[string]struct{}, len(names))
		for _, n := range names {
			member[n] = struct{}{}
		}
		for _, n := range names {
			if !graph.HasNode(n) {
				return nil, fmt.Errorf("annex node %s not present in graph", n)
			}
			annex.AddNode(n)
			graph.EachEdge(n, func(v string, payload any) bool {
				if _, in := member[v]; !in {
					annex.AddEdge(n, v, payload)
				}
				return true
			})
		}
	}

	if annexEdges != "" {
		if annex == nil {
			annex = core.New[string, any]()
		}
		for _, item := range strings.Split(annexEdges, ";") {
			parts := strings.SplitN(item, ":", 3)
			if len(parts) != 3 {
				return nil, fmt.Errorf("malformed annex edge %q; want u:v:cost", item)
			}
			cost, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, fmt.Errorf("malformed annex edge cost %q: %w", parts[2], err)
			}
			annex.AddEdge(parts[0], parts[1], cost)
		}
	}

	return annex, nil
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the uniform error document.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{
		"status_code": status,
		"explanation": http.StatusText(status),
		"detail":      detail,
	})
}
