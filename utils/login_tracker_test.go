package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	safariIphoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	firefoxLinuxUA  = "Mozilla/5.0 (X11; Linux x86_64; rv:122.0) Gecko/20100101 Firefox/122.0"
	edgeWindowsUA   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0"
	ipadUA          = "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
)

func TestParseDeviceType(t *testing.T) {
	assert.Equal(t, "desktop", parseDeviceType(chromeWindowsUA))
	assert.Equal(t, "mobile", parseDeviceType(safariIphoneUA))
	assert.Equal(t, "tablet", parseDeviceType(ipadUA))
	assert.Equal(t, "desktop", parseDeviceType(""))
}

func TestParseBrowser(t *testing.T) {
	assert.Equal(t, "Chrome", parseBrowser(chromeWindowsUA))
	assert.Equal(t, "Safari", parseBrowser(safariIphoneUA))
	assert.Equal(t, "Firefox", parseBrowser(firefoxLinuxUA))
	// Edge carries a chrome token too; edg wins.
	assert.Equal(t, "Edge", parseBrowser(edgeWindowsUA))
	assert.Equal(t, "Other", parseBrowser("curl/8.4.0"))
}

func TestParseOS(t *testing.T) {
	assert.Equal(t, "Windows", parseOS(chromeWindowsUA))
	assert.Equal(t, "Linux", parseOS(firefoxLinuxUA))
	assert.Equal(t, "macOS", parseOS("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15"))
	assert.Equal(t, "Android", parseOS("Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36"))
	assert.Equal(t, "Other", parseOS("curl/8.4.0"))
}
