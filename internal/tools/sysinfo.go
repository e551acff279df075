package tools

import (
	"context"
	"encoding/json"
	"os"
	"runtime"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var processStart = time.Now()

// SystemInfoInput takes no arguments.
type SystemInfoInput struct{}

// SystemInfo is the payload returned by the system_info tool.
type SystemInfo struct {
	Platform  string     `json:"platform"`
	GoVersion string     `json:"goVersion"`
	PID       int        `json:"pid"`
	Uptime    float64    `json:"uptime"`
	Memory    MemoryInfo `json:"memory"`
}

// MemoryInfo reports heap usage in bytes.
type MemoryInfo struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
	Free  uint64 `json:"free"`
}

// CollectSystemInfo samples the running process.
func CollectSystemInfo() SystemInfo {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return SystemInfo{
		Platform:  runtime.GOOS,
		GoVersion: runtime.Version(),
		PID:       os.Getpid(),
		Uptime:    time.Since(processStart).Seconds(),
		Memory: MemoryInfo{
			Total: ms.HeapSys,
			Used:  ms.HeapAlloc,
			Free:  ms.HeapSys - ms.HeapAlloc,
		},
	}
}

// SystemInfoHandler returns the process sample as indented JSON.
func SystemInfoHandler(_ context.Context, _ *mcp.CallToolRequest, _ SystemInfoInput) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(CollectSystemInfo(), "", "  ")
	if err != nil {
		return nil, nil, err
	}
	return textResult(string(data)), nil, nil
}

func registerSystemInfo(srv *mcp.Server) error {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "system_info",
		Description: "Returns system information",
	}, SystemInfoHandler)
	return nil
}
