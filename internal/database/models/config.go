package models

import "strings"

// Well-known CONFIG keys
const (
	ConfigKeyPipelineStages = "pipeline_stages"
	StageSeparator          = "|"
)

// ConfigRow is a key/value row of the CONFIG tab
type ConfigRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SplitStages parses a pipe-delimited stage list, trimming every token
func SplitStages(value string) []string {
	parts := strings.Split(value, StageSeparator)
	stages := make([]string, 0, len(parts))
	for _, p := range parts {
		stages = append(stages, strings.TrimSpace(p))
	}
	return stages
}
