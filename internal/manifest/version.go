package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var unityVersionPattern = regexp.MustCompile(`^\d{4}\.\d+$`)

// CheckVersion reports whether version is a strict semantic version, as the
// package manager requires for the "version" field. A leading "v" is rejected.
func CheckVersion(version string) error {
	if strings.HasPrefix(version, "v") {
		return fmt.Errorf("version %q must not start with 'v'", version)
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return fmt.Errorf("version %q is not semantic: %w", version, err)
	}
	return nil
}

// CheckUnityVersion reports whether v has the "<year>.<minor>" form used by
// the "unity" field.
func CheckUnityVersion(v string) error {
	if !unityVersionPattern.MatchString(v) {
		return fmt.Errorf("unity version %q must look like 2019.1", v)
	}
	return nil
}
