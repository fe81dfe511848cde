package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# latest-changelog configuration

changelog_path: ./CHANGELOG.md        # Markdown changelog to read
output_path: ./latest_changelog.md    # File receiving the newest entry
parser: regex                         # regex | markdown (ignores headings in code blocks)
all_matches: false                    # Validate and write every entry, not only the newest
normalize_versions: false             # Treat "v1.2.0" and "1.2.0" as equal
git_tags: false                       # Accept tags pointing at HEAD as expected versions

# Advanced: override the heading expressions (RE2 syntax)
heading_pattern: ""                   # Must define a (?P<version>...) group
boundary_pattern: ""                  # Start of the next entry
`
}

// GetDefaults returns the default configuration values as a map.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog_path":     "./CHANGELOG.md",
		"output_path":        "./latest_changelog.md",
		"parser":             "regex",
		"all_matches":        false,
		"normalize_versions": false,
		"git_tags":           false,
		"heading_pattern":    "",
		"boundary_pattern":   "",
	}
}
