package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func GetRandomUserAgent() string {
	return userAgents[time.Now().UnixNano()%int64(len(userAgents))]
}

func ParseHeaderArgs(headers []string) map[string]string {
	result := make(map[string]string)
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			result[key] = value
		}
	}
	return result
}

// ReadFetchList parses a YAML manifest into an ordered list of relative UCD
// paths.
func ReadFetchList(filePath string) ([]string, error) {
	log := GetLogger("manifest")
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file: %v", err)
	}
	var entries []FetchEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing YAML file: %v", err)
	}
	descriptors := make([]string, 0, len(entries))
	for i, entry := range entries {
		if entry.Path == "" {
			return nil, fmt.Errorf("missing path for entry %d", i+1)
		}
		descriptors = append(descriptors, entry.Path)
	}
	log.Debug().Int("count", len(descriptors)).Msg("Entries loaded from YAML")
	return descriptors, nil
}
