package postprocessors

import (
	"fmt"
	"regexp"
	"strings"
)

// Built-in stage names.
const (
	StageDimensionCaption = "dimension-caption"
	StageEmptyLabel       = "empty-label"
	StageUploadLine       = "upload-line"
	StageBlankLines       = "blank-lines"
	StageTrim             = "trim"
)

// DefaultOrder is the cleanup order applied after HTML conversion.
func DefaultOrder() []string {
	return []string{
		StageDimensionCaption,
		StageEmptyLabel,
		StageUploadLine,
		StageBlankLines,
		StageTrim,
	}
}

// DefaultUploadHost is the forum whose upload lines are stripped by default.
const DefaultUploadHost = "linux.do"

// ImagePlaceholder replaces links whose label is a width×height caption.
const ImagePlaceholder = "[image]"

// RegisterDefaults registers all built-in stages with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(StageDimensionCaption, func(map[string]any) (Stage, error) {
		return NewStage(StageDimensionCaption, CollapseDimensionCaptions), nil
	})
	r.Register(StageEmptyLabel, func(map[string]any) (Stage, error) {
		return NewStage(StageEmptyLabel, RemoveEmptyLinks), nil
	})
	r.Register(StageUploadLine, buildUploadLine)
	r.Register(StageBlankLines, func(map[string]any) (Stage, error) {
		return NewStage(StageBlankLines, CollapseBlankLines), nil
	})
	r.Register(StageTrim, func(map[string]any) (Stage, error) {
		return NewStage(StageTrim, strings.TrimSpace), nil
	})
}

// buildUploadLine creates the upload-line stage from generic config.
// Supported config keys:
//   - base_url (string): forum base URL whose /uploads/ path is matched
//     (default: https://linux.do)
func buildUploadLine(cfg map[string]any) (Stage, error) {
	host := DefaultUploadHost
	if base := getStringFromConfig(cfg, "base_url"); base != "" {
		host = uploadHost(base)
		if host == "" {
			return nil, fmt.Errorf("upload-line: invalid base_url %q", base)
		}
	}
	return NewStage(StageUploadLine, UploadLineRemover(host)), nil
}

// getStringFromConfig safely extracts a string from generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	if cfg == nil {
		return ""
	}
	s, _ := cfg[key].(string)
	return s
}

// uploadHost strips the scheme and trailing slash from a base URL.
func uploadHost(base string) string {
	host := strings.TrimPrefix(base, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimRight(host, "/")
}

var (
	dimensionCaptionLink = regexp.MustCompile(`\[([^\]]*?\d+[×x]\d+[^\]]*?)\]\([^)]+\)`)
	emptyLabelLink       = regexp.MustCompile(`\[\s*\]\([^)]+\)`)
)

// CollapseDimensionCaptions replaces any link whose label carries a
// <digits>x<digits> caption with the image placeholder, URL included.
func CollapseDimensionCaptions(text string) string {
	return dimensionCaptionLink.ReplaceAllString(text, ImagePlaceholder)
}

// RemoveEmptyLinks drops links with an empty label.
func RemoveEmptyLinks(text string) string {
	return emptyLabelLink.ReplaceAllString(text, "")
}

// UploadLineRemover returns a stage function that removes lines holding only
// a parenthesised upload URL under host.
func UploadLineRemover(host string) func(string) string {
	pattern := regexp.MustCompile(`\n\s*\(https?://` + regexp.QuoteMeta(host) + `/uploads/[^)]+\)\s*\n`)
	return func(text string) string {
		return pattern.ReplaceAllString(text, "\n")
	}
}

// CollapseBlankLines reduces every run of blank lines to a single one.
func CollapseBlankLines(text string) string {
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return text
}
