package platform

import (
	"strings"
)

// osAliases maps identifiers other runtimes report to Go's GOOS names.
var osAliases = map[string]string{
	"win32":  "windows",
	"win":    "windows",
	"macos":  "darwin",
	"osx":    "darwin",
	"darwin": "darwin",
	"linux":  "linux",
}

// archAliases maps identifiers other runtimes report to Go's GOARCH names.
var archAliases = map[string]string{
	"x64":     "amd64",
	"x86_64":  "amd64",
	"amd64":   "amd64",
	"aarch64": "arm64",
	"arm64":   "arm64",
}

// familyMap maps distribution names to their canonical family names.
var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian,
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyFedora,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
}

// NormalizeOS converts an operating system identifier to its GOOS spelling.
// Unknown identifiers are returned lowercased and trimmed.
func NormalizeOS(os string) string {
	os = normalizePlatform(os)
	if canonical, ok := osAliases[os]; ok {
		return canonical
	}
	return os
}

// NormalizeArch converts an architecture identifier to its GOARCH spelling.
// Unknown identifiers are returned lowercased and trimmed.
func NormalizeArch(arch string) string {
	arch = normalizePlatform(arch)
	if canonical, ok := archAliases[arch]; ok {
		return canonical
	}
	return arch
}

// normalizePlatform converts platform IDs to lowercase for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// mapFamily maps distribution family strings to canonical family names.
func mapFamily(family string) string {
	if canonical, ok := familyMap[normalizePlatform(family)]; ok {
		return canonical
	}
	return FamilyUnknown
}
