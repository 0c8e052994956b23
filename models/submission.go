package models

// Query parameter names understood by the cloudphish API.
const (
	ParamURL       = "url"
	ParamAlert     = "a"
	ParamReprocess = "r"
	ParamSHA256    = "s"
)

// SubmitRequest describes a URL submission to cloudphish.
type SubmitRequest struct {
	// URL is the address to scan or to check on.
	// Required.
	URL string

	// Reprocess forces cloudphish to analyse the URL again even when a
	// cached result exists.
	Reprocess bool

	// Alert asks cloudphish to raise an ACE alert when it finds a detection
	// and no alert has been generated for the URL yet.
	Alert bool
}

// QueryParams maps the request onto its query string: url is always set,
// a=1 only when Alert and r=1 only when Reprocess.
func (r SubmitRequest) QueryParams() map[string]string {
	params := map[string]string{ParamURL: r.URL}
	if r.Alert {
		params[ParamAlert] = "1"
	}
	if r.Reprocess {
		params[ParamReprocess] = "1"
	}

	return params
}
