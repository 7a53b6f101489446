package models

import "strings"

// TagSeparator joins investor tags inside a single cell
const TagSeparator = ";"

// Investor is an entry of the investor directory
type Investor struct {
	InvestorID   string `json:"investor_id"`
	InvestorName string `json:"investor_name"`
	Tags         string `json:"tags"` // semicolon-separated
	Email        string `json:"email"`
	LinkedIn     string `json:"linkedin"`
	Notes        string `json:"notes"`
}

// TagList splits Tags into trimmed, non-empty values
func (i Investor) TagList() []string {
	var tags []string
	for _, tag := range strings.Split(i.Tags, TagSeparator) {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags builds the cell value for a list of tags
func JoinTags(tags []string) string {
	return strings.Join(tags, TagSeparator)
}
