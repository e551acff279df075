package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yosida95/uritemplate/v3"
)

// apiResponse is the placeholder body of an api://example resource.
type apiResponse struct {
	Endpoint  string `json:"endpoint"`
	Data      string `json:"data"`
	Timestamp string `json:"timestamp"`
}

func loadFile(_ context.Context, vars uritemplate.Values) (string, error) {
	filename := vars.Get("filename").String()
	return fmt.Sprintf("Example content from file: %s\n\nThis is a placeholder resource.", filename), nil
}

func loadAPI(_ context.Context, vars uritemplate.Values) (string, error) {
	body, err := json.MarshalIndent(apiResponse{
		Endpoint:  vars.Get("endpoint").String(),
		Data:      "This is example API data",
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(body), nil
}
