package fetch

import (
	"context"
	"encoding/base64"

	"github.com/jonathan/permit-navigator/internal/datastore"
)

// DirectResolver resolves URLs without the data-store proxy. It fetches the
// URL itself, passes PDFs through base64-encoded, and reduces HTML to the
// main page text with portal-aware selectors. It produces the same response
// shape as the proxy client, so the two are interchangeable behind
// datastore.Resolver.
type DirectResolver struct {
	opts       *Options
	useBrowser bool
	verbose    bool
}

// NewDirectResolver creates a direct resolver. When useBrowser is set, pages
// whose extracted text is too short are re-fetched through a headless
// browser.
func NewDirectResolver(useBrowser, verbose bool) *DirectResolver {
	return &DirectResolver{
		opts:       DefaultOptions(),
		useBrowser: useBrowser,
		verbose:    verbose,
	}
}

// Resolve fetches one URL and returns model-ready content.
func (d *DirectResolver) Resolve(ctx context.Context, rawURL string) (*datastore.Response, error) {
	result, err := URL(ctx, rawURL, d.opts)
	if err != nil {
		return nil, err
	}

	if result.IsPDF() {
		return &datastore.Response{
			SourceURL: rawURL,
			MimeType:  datastore.MimePDF,
			Content:   base64.StdEncoding.EncodeToString(result.Body),
		}, nil
	}

	portal := DetectPortal(rawURL)
	text, err := ExtractMainText(string(result.Body), PortalContentSelectors(portal), PortalNoiseSelectors(portal)...)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to extract page text", Cause: err}
	}

	if d.useBrowser && ShouldUseBrowser(text) {
		html, browserErr := BrowserSimple(ctx, rawURL, d.verbose)
		if browserErr == nil {
			rendered, extractErr := ExtractMainText(html, PortalContentSelectors(portal), PortalNoiseSelectors(portal)...)
			if extractErr == nil && len(rendered) > len(text) {
				text = rendered
			}
		}
	}

	return &datastore.Response{
		SourceURL: rawURL,
		MimeType:  datastore.MimeText,
		Content:   text,
	}, nil
}
