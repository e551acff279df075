package config

import (
	"fmt"

	"github.com/atlanticdynamic/mcpfoundation/internal/fancy"
)

// String renders the configuration as a tree. Secrets are masked.
func (c AppConfig) String() string {
	root := fancy.RootTree("MCP Foundation Configuration")

	server := fancy.BranchNode("Server", "")
	server.Child(fancy.KeyValue("transport", c.Server.Transport.String()))
	if c.IsHTTP() {
		server.Child(fancy.KeyValue("address", fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)))
	}
	server.Child(fancy.KeyValue("log", fmt.Sprintf("%s (%s)", c.Server.LogLevel, c.Server.LogFormat)))
	server.Child(fancy.KeyValue("environment", c.Server.Environment))
	root.Child(server)

	security := fancy.BranchNode("Security", "")
	security.Child(fancy.KeyValue("api_key", fancy.MaskSecret(c.Security.APIKey)))
	security.Child(fancy.KeyValue("jwt_secret", fancy.MaskSecret(c.Security.JWTSecret)))
	security.Child(fancy.KeyValue("allowed_origins", c.Security.AllowedOrigins))
	root.Child(security)

	features := fancy.BranchNode("Features", "")
	features.Child(fancy.KeyValue("tools", enabledText(c.Features.EnableTools)))
	features.Child(fancy.KeyValue("resources", enabledText(c.Features.EnableResources)))
	features.Child(fancy.KeyValue("prompts", enabledText(c.Features.EnablePrompts)))
	root.Child(features)

	tools := fancy.BranchNode("Tools", "")
	tools.Child(fancy.KeyValue("python", c.Tools.PythonPath))
	tools.Child(fancy.KeyValue("node", c.Tools.NodePath))
	tools.Child(fancy.KeyValue("max_execution_time", c.Tools.MaxExecutionTime))
	root.Child(tools)

	return root.String()
}

func enabledText(on bool) string {
	if on {
		return fancy.ValidText("enabled")
	}
	return fancy.ErrorText("disabled")
}
