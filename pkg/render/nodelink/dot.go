package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/printgraph/pkg/printgraph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the identity key and depth in node labels.
	// When false, only the node name is shown.
	Detailed bool
}

// ToDOT walks the graph reachable from root and converts it to Graphviz DOT
// format. The walk is the same one used for text output, so each identity key
// becomes exactly one vertex. Tree edges are solid; edges that lead to an
// already visited node (back-references) are dashed.
//
// Errors from the capability set are returned unchanged.
func ToDOT[T any, K comparable](root T, m printgraph.Methods[T, K], opts Options) (string, error) {
	var nodes, edges bytes.Buffer
	err := printgraph.Walk(root, m, func(v printgraph.Visit[T, K]) error {
		id := printgraph.FormatKey(v.Key)
		if !v.BackRef {
			attrs := fmtAttrs(v, fmtLabel(v, opts.Detailed))
			fmt.Fprintf(&nodes, "  %q [%s];\n", id, strings.Join(attrs, ", "))
		}
		if v.HasParent {
			parent := printgraph.FormatKey(v.Parent)
			if v.BackRef {
				fmt.Fprintf(&edges, "  %q -> %q [style=dashed, color=grey50];\n", parent, id)
			} else {
				fmt.Fprintf(&edges, "  %q -> %q;\n", parent, id)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")
	buf.Write(nodes.Bytes())
	buf.WriteString("\n")
	buf.Write(edges.Bytes())
	buf.WriteString("}\n")
	return buf.String(), nil
}

func fmtLabel[T any, K comparable](v printgraph.Visit[T, K], detailed bool) string {
	if !detailed {
		return v.Name
	}
	return fmt.Sprintf("%s\nkey: %s\ndepth: %d", v.Name, printgraph.FormatKey(v.Key), v.Depth)
}

func fmtAttrs[T any, K comparable](v printgraph.Visit[T, K], label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !v.HasParent {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing starts at the
// origin and carries explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
