package migration

import (
	"fmt"
	"slices"
	"strings"

	"dealflow-backend/internal/database/models"
)

// legacyStages maps lowercased legacy stage labels onto the canonical stages
var legacyStages = map[string]string{
	"potentials":        "Potentials",
	"target":            "Potentials",
	"initial contact":   "Initial Contact",
	"contacted":         "Initial Contact",
	"advanced contact":  "Advanced Contact",
	"meeting scheduled": "Advanced Contact",
	"meeting done":      "Advanced Contact",
	"due diligence":     "Due Diligence",
	"dd":                "Due Diligence",
	"next steps":        "Negotiation",
	"negotiation":       "Negotiation",
	"negotiating":       "Negotiation",
	"declined":          "Declined",
	"passed":            "Declined",
	"rejected":          "Declined",
	"accepted":          "Accepted",
	"closed":            "Accepted",
	"committed":         "Accepted",
}

// StageMapping is the outcome of mapping one legacy stage label
type StageMapping struct {
	Stage  string
	Mapped bool
	Note   string
}

// MapStage maps a free-text legacy stage onto a canonical stage. Unknown or
// empty labels fall back to the first canonical stage with Mapped false.
func MapStage(legacy string) StageMapping {
	fallback := models.DefaultPipelineStages[0]

	if strings.TrimSpace(legacy) == "" {
		return StageMapping{Stage: fallback, Note: "Empty stage -> " + fallback}
	}
	if slices.Contains(models.DefaultPipelineStages, legacy) {
		return StageMapping{Stage: legacy, Mapped: true}
	}
	if stage, ok := legacyStages[strings.ToLower(strings.TrimSpace(legacy))]; ok {
		return StageMapping{Stage: stage, Mapped: true, Note: fmt.Sprintf("%q -> %q", legacy, stage)}
	}
	return StageMapping{
		Stage: fallback,
		Note:  fmt.Sprintf("Could not map %q -> defaulting to %q", legacy, fallback),
	}
}

// annotate appends a migration note to existing link notes
func annotate(notes, note string) string {
	if note == "" {
		return notes
	}
	tag := "[Migration: " + note + "]"
	if notes == "" {
		return tag
	}
	return notes + " " + tag
}
