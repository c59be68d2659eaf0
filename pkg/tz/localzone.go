package tz

import (
	"os"
	"strings"
	"time"
)

// LocalZone returns the IANA identifier of the host's local zone, or ""
// when it cannot be determined. The stdlib names the local Location only
// "Local", which is not a shareable identifier, so the TZ environment
// variable and the /etc/localtime symlink are consulted instead.
func LocalZone() string {
	if tzEnv, ok := os.LookupEnv("TZ"); ok {
		// TZ set but empty means UTC.
		if tzEnv == "" {
			return "UTC"
		}
		if _, err := time.LoadLocation(tzEnv); err == nil {
			return tzEnv
		}
		return ""
	}
	if target, err := os.Readlink("/etc/localtime"); err == nil {
		return zoneFromLocaltimePath(target)
	}
	return ""
}

// zoneFromLocaltimePath extracts the zone identifier from a localtime
// symlink target. Some hosts link through the posix/ or right/ subtrees
// ("/usr/share/zoneinfo/posix/Europe/Oslo"), which duplicate the main
// tree under names Resolve rejects, so that segment is stripped.
func zoneFromLocaltimePath(target string) string {
	i := strings.Index(target, "zoneinfo/")
	if i < 0 {
		return ""
	}
	name := target[i+len("zoneinfo/"):]
	name = strings.TrimPrefix(name, "posix/")
	name = strings.TrimPrefix(name, "right/")
	return name
}
