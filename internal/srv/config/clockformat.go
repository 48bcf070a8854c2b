package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

type ClockFormat string

const (
	AUTO_CLOCK_FORMAT ClockFormat = "auto"
	H12_CLOCK_FORMAT  ClockFormat = "12h"
	H24_CLOCK_FORMAT  ClockFormat = "24h"
)

// Regions where the 12-hour clock is the usual convention
var twelveHourRegions = map[string]bool{
	"US": true,
	"CA": true,
	"AU": true,
	"NZ": true,
	"PH": true,
	"IN": true,
	"PK": true,
	"BD": true,
	"EG": true,
	"SA": true,
	"MY": true,
	"CO": true,
	"IE": true,
}

// Use24Hour resolves the clock format, "auto" follows the host locale
func (sp *ServerParam) Use24Hour() bool {
	switch sp.ClockFormat {
	case H12_CLOCK_FORMAT:
		return false
	case H24_CLOCK_FORMAT:
		return true
	case AUTO_CLOCK_FORMAT, "":
		return LocaleUses24Hour(HostLocale())
	default:
		logrus.Warnf("Unknown clock format %q, using 24h", sp.ClockFormat)
		return true
	}
}

// HostLocale returns the locale used for time formatting, following the POSIX precedence
func HostLocale() string {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}

// LocaleUses24Hour interprets a POSIX locale such as "en_US.UTF-8"
func LocaleUses24Hour(locale string) bool {
	// Strip codeset and modifier
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return true
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		logrus.Debugf("Unable to parse locale %q: %v", locale, err)
		return true
	}
	region, confidence := tag.Region()
	if confidence == language.No {
		return true
	}
	return !twelveHourRegions[region.String()]
}
