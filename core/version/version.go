// Package version returns bin-parser version information.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version records bin-parser version information.
type Version struct {
	Version string    `json:"version"`
	Commit  string    `json:"commit"`
	Date    time.Time `json:"date"`
	Dirty   bool      `json:"dirty"`
}

func (v Version) String() string {
	return v.Version
}

// V contains bin-parser version information.
var V = Version{
	Version: "development",
	Commit:  "unknown",
	Dirty:   true,
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	V = fromBuildSettings(bi.Settings)
}

func fromBuildSettings(settings []debug.BuildSetting) (v Version) {
	v = V
	bs := map[string]string{}
	for _, kv := range settings {
		bs[kv.Key] = kv.Value
	}
	dt, e := time.Parse(time.RFC3339, bs["vcs.time"])
	if bs["vcs"] != "git" || len(bs["vcs.revision"]) != 40 || e != nil {
		return v
	}

	v.Commit = bs["vcs.revision"]
	v.Date = dt
	v.Dirty = bs["vcs.modified"] == "true"
	v.Version = fmt.Sprintf("v0.0.0-%s-%s%s", v.Date.UTC().Format("20060102150405"), v.Commit[:12], map[bool]string{true: "-dirty"}[v.Dirty])
	return v
}
