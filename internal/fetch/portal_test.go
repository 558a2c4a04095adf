package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPortal_CivicPlus(t *testing.T) {
	tests := []struct {
		url      string
		expected Portal
	}{
		{"https://www.cityofexample.civicplus.com/166/Building-Permits", PortalCivicPlus},
		{"https://example.civicengage.com/permits", PortalCivicPlus},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPortal(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPortal_Accela(t *testing.T) {
	tests := []struct {
		url      string
		expected Portal
	}{
		{"https://aca-prod.accela.com/SEATTLE/Default.aspx", PortalAccela},
		{"https://citizenaccess.example.gov/permits", PortalAccela},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPortal(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPortal_OpenGov(t *testing.T) {
	tests := []struct {
		url      string
		expected Portal
	}{
		{"https://example.viewpointcloud.com/categories/1071", PortalOpenGov},
		{"https://permits.opengov.com/example", PortalOpenGov},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPortal(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPortal_Unknown(t *testing.T) {
	tests := []struct {
		url      string
		expected Portal
	}{
		{"https://www.seattle.gov/sdci/permits", PortalUnknown},
		{"https://example.com/building", PortalUnknown},
		{"::bad::", PortalUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPortal(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPortalContentSelectors_CivicPlus(t *testing.T) {
	selectors := PortalContentSelectors(PortalCivicPlus)
	assert.Contains(t, selectors, ".widgetBody")
	assert.Contains(t, selectors, ".pageStyles")
}

func TestPortalContentSelectors_Unknown(t *testing.T) {
	selectors := PortalContentSelectors(PortalUnknown)
	// Should fall back to generic permit page selectors
	assert.Contains(t, selectors, ".permit-content")
	assert.Contains(t, selectors, "main")
}

func TestPortalNoiseSelectors_CivicPlus(t *testing.T) {
	selectors := PortalNoiseSelectors(PortalCivicPlus)
	// Common selectors
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".cookie-banner")
	// CivicPlus-specific
	assert.Contains(t, selectors, ".leftNav")
	assert.Contains(t, selectors, ".quickLinks")
}

func TestPortalNoiseSelectors_Unknown(t *testing.T) {
	selectors := PortalNoiseSelectors(PortalUnknown)
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".emergency-alert")
	assert.Contains(t, selectors, ".cookie-banner")
}
