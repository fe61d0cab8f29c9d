package updatechecker

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/virel-project/virel-token/logger"
)

// Status represents the update check result
type Status int

const (
	StatusUpToDate Status = iota
	StatusPatchUpdate
	StatusMinorUpdate
	StatusMajorUpdate
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusUpToDate:
		return "up to date"
	case StatusPatchUpdate:
		return "patch"
	case StatusMinorUpdate:
		return "minor"
	case StatusMajorUpdate:
		return "major"
	}
	return "error"
}

type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func RunUpdateChecker(Log *logger.Log, url string, current Version) {
	Log.Info("Checking for updates")
	status, remote, err := CheckForUpdate(url, current)
	if err != nil || status == StatusError {
		Log.Warn("Error checking for updates:", err)
		return
	}

	if status == StatusUpToDate {
		Log.Infof("virel-token is up to date (v%v)", current)
		return
	}
	Log.Infof("There's a new %s update available: You are on v%v, version v%v", status, current, remote)
}

type githubReleaseInfo struct {
	TagName string `json:"tag_name"`
}

// CheckForUpdate fetches the latest release tag from url and compares it with current
func CheckForUpdate(url string, current Version) (Status, Version, error) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return StatusError, Version{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return StatusError, Version{}, fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return StatusError, Version{}, err
	}

	ghr := githubReleaseInfo{}
	err = json.Unmarshal(body, &ghr)
	if err != nil {
		return StatusError, Version{}, err
	}

	remote, err := ParseVersion(strings.Split(strings.TrimPrefix(ghr.TagName, "v"), "-")[0])
	if err != nil {
		return StatusError, Version{}, err
	}

	return Compare(current, remote), remote, nil
}

func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s", s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, err
		}
		nums[i] = n
	}

	return Version{nums[0], nums[1], nums[2]}, nil
}

// Compare returns the kind of update remote is relative to current
func Compare(current, remote Version) Status {
	if remote.Major > current.Major {
		return StatusMajorUpdate
	}
	if remote.Major == current.Major && remote.Minor > current.Minor {
		return StatusMinorUpdate
	}
	if remote.Major == current.Major && remote.Minor == current.Minor && remote.Patch > current.Patch {
		return StatusPatchUpdate
	}
	return StatusUpToDate
}
