// Package resources holds the example MCP resource templates.
package resources

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/yosida95/uritemplate/v3"
)

// loadFunc produces the resource text for the template variables of a URI.
type loadFunc func(ctx context.Context, vars uritemplate.Values) (string, error)

// registration describes one resource template and how to read it.
type registration struct {
	name        string
	uriTemplate string
	mimeType    string
	description string
	load        loadFunc
}

var registrations = []registration{
	{
		name:        "Example File Resource",
		uriTemplate: "file://example/{filename}",
		mimeType:    "text/plain",
		description: "Placeholder file contents for the named file",
		load:        loadFile,
	},
	{
		name:        "Example API Resource",
		uriTemplate: "api://example/{endpoint}",
		mimeType:    "application/json",
		description: "Placeholder API response for the named endpoint",
		load:        loadAPI,
	},
}

// Templates returns the URI templates in registration order.
func Templates() []string {
	out := make([]string, 0, len(registrations))
	for _, r := range registrations {
		out = append(out, r.uriTemplate)
	}
	return out
}

// Register adds every resource template to srv and logs the result.
func Register(srv *mcp.Server, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default().WithGroup("resources")
	}

	for _, r := range registrations {
		tmpl, err := uritemplate.New(r.uriTemplate)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrRegisterResource, r.uriTemplate, err)
		}

		srv.AddResourceTemplate(&mcp.ResourceTemplate{
			Name:        r.name,
			URITemplate: r.uriTemplate,
			MIMEType:    r.mimeType,
			Description: r.description,
		}, newHandler(tmpl, r))
	}

	logger.Info("Registered resources", "count", len(registrations), "templates", Templates())
	return nil
}

func newHandler(tmpl *uritemplate.Template, r registration) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := req.Params.URI
		vars, err := Match(tmpl, uri)
		if err != nil {
			return nil, mcp.ResourceNotFoundError(uri)
		}

		text, err := r.load(ctx, vars)
		if err != nil {
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      uri,
				MIMEType: r.mimeType,
				Text:     text,
			}},
		}, nil
	}
}

// Match extracts the variables of uri, requiring every template variable to
// be present and non-empty.
func Match(tmpl *uritemplate.Template, uri string) (uritemplate.Values, error) {
	vars := tmpl.Match(uri)
	if vars == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMismatch, uri)
	}
	for _, name := range tmpl.Varnames() {
		if vars.Get(name).String() == "" {
			return nil, fmt.Errorf("%w: %s has no %s", ErrTemplateMismatch, uri, name)
		}
	}
	return vars, nil
}
