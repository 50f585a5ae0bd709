package osinfo

import (
	"fmt"

	"github.com/vantagepanel/bootstrap/internal/util"
)

// supportedReleases is the fixed allow-list of distribution and
// major-version pairs the panel stack is built and tested against.
// Matching is exact string equality on "id major".
var supportedReleases = []string{
	"ubuntu 18",
	"ubuntu 20",
	"debian 9",
	"debian 10",
	"debian 11",
	"centos 7",
	"rocky 8",
	"almalinux 8",
}

// Supported reports whether the detected OS is on the allow-list.
func (i Info) Supported() bool {
	return util.Contains(i.ID+" "+i.VersionMajor, supportedReleases...)
}

// CheckSupport returns a descriptive error when the detected OS is
// not on the allow-list. The caller is expected to treat this as
// fatal and exit non-zero.
func CheckSupport(i Info) error {
	if !i.Supported() {
		return fmt.Errorf("unsupported operating system: %s %s", i.ID, i.Version)
	}
	return nil
}
