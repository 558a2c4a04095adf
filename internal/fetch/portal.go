// Package fetch - portal.go provides portal detection and portal-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Portal represents a known municipal web platform.
type Portal string

const (
	// PortalCivicPlus is the CivicPlus municipal CMS
	PortalCivicPlus Portal = "civicplus"
	// PortalAccela is the Accela Citizen Access permitting platform
	PortalAccela Portal = "accela"
	// PortalOpenGov is the OpenGov (ViewPoint Cloud) permitting platform
	PortalOpenGov Portal = "opengov"
	// PortalUnknown is an unrecognized platform
	PortalUnknown Portal = "unknown"
)

// DetectPortal identifies the municipal platform from a URL.
func DetectPortal(urlStr string) Portal {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PortalUnknown
	}

	host := strings.ToLower(parsed.Host)

	// CivicPlus patterns
	if strings.Contains(host, "civicplus.com") ||
		strings.Contains(host, "civicengage.com") {
		return PortalCivicPlus
	}

	// Accela patterns
	if strings.Contains(host, "accela.com") ||
		strings.Contains(host, "citizenaccess") {
		return PortalAccela
	}

	// OpenGov patterns
	if strings.Contains(host, "opengov.com") ||
		strings.Contains(host, "viewpointcloud.com") {
		return PortalOpenGov
	}

	return PortalUnknown
}

// PortalContentSelectors returns content selectors optimized for a specific platform.
func PortalContentSelectors(portal Portal) []string {
	switch portal {
	case PortalCivicPlus:
		return []string{
			".widgetBody",       // Primary CivicPlus content widget
			".pageStyles",       // Page body wrapper
			".contentMain",      // Alternative
			"#ContentPlaceHolder1", // Legacy layout
			".fr-view",          // Rich-text regions
		}
	case PortalAccela:
		return []string{
			"#ctl00_PlaceHolderMain_generalSearchForm",
			".ACA_TabRow",
			".MainContent",
			"#content",
		}
	case PortalOpenGov:
		return []string{
			".record-detail",
			".department-page",
			".public-content",
			".content",
		}
	default:
		return PermitPageSelectors()
	}
}

// PortalNoiseSelectors returns noise exclusion selectors for a specific platform.
func PortalNoiseSelectors(portal Portal) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Login and account chrome
		"form",
		"#login-form",
		".login-form",
		".account-menu",
		".signin-container",

		// Alerts and notices
		".emergency-alert",
		".alert-banner",
		".site-notice",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	switch portal {
	case PortalCivicPlus:
		return append(common,
			".breadcrumbs",
			".leftNav",
			".quickLinks",
			"#translatePage",
			".moduleFooter",
		)
	case PortalAccela:
		return append(common,
			".ACA_MenuBar",
			".aca_footer",
			"#divGlobalLoading",
		)
	case PortalOpenGov:
		return append(common,
			".apply-button",
			".record-actions",
			".auth-prompt",
		)
	default:
		return common
	}
}
