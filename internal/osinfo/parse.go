package osinfo

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// parseOSRelease extracts ID and VERSION_ID from os-release(5) data.
// Values may be quoted; comments and malformed lines are skipped.
func parseOSRelease(data string) (Info, bool) {
	fields := map[string]string{}
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		value := parts[1]
		if v, err := strconv.Unquote(value); err == nil {
			value = v
		}
		fields[parts[0]] = value
	}

	if fields["ID"] == "" {
		return Info{}, false
	}
	return Info{ID: fields["ID"], Version: fields["VERSION_ID"]}, true
}

// parseLSBRelease handles the legacy /etc/lsb-release format
// (DISTRIB_ID / DISTRIB_RELEASE).
func parseLSBRelease(data string) (Info, bool) {
	fields := map[string]string{}
	for _, line := range strings.Split(data, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), "=", 2)
		if len(parts) != 2 {
			continue
		}
		fields[parts[0]] = strings.Trim(parts[1], `"`)
	}
	if fields["DISTRIB_ID"] == "" {
		return Info{}, false
	}
	return Info{ID: fields["DISTRIB_ID"], Version: fields["DISTRIB_RELEASE"]}, true
}

var suseVersionRe = regexp.MustCompile(`(?m)^VERSION\s*=\s*(\S+)`)

func parseSuseVersion(data string) string {
	if m := suseVersionRe.FindStringSubmatch(data); m != nil {
		return m[1]
	}
	return ""
}

var redhatReleaseRe = regexp.MustCompile(`release\s+([0-9][0-9.]*)`)

// parseRedhatRelease handles lines like
// "CentOS Linux release 7.9.2009 (Core)".
func parseRedhatRelease(data string) Info {
	data = strings.TrimSpace(data)
	info := Info{}
	if f := strings.Fields(data); len(f) > 0 {
		info.ID = f[0]
	}
	if m := redhatReleaseRe.FindStringSubmatch(data); m != nil {
		info.Version = m[1]
	}
	return info
}
