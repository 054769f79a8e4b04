package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Quotation is the frozen snapshot carried inside a share token. Field names
// match the persisted document shape so a token round-trips byte-identical
// view models. Tax rates and derived totals are embedded flat.
type Quotation struct {
	QuotationID   string     `json:"quotationId"`
	LeadID        string     `json:"leadId,omitempty"`
	ClientName    string     `json:"clientName"`
	ClientEmail   string     `json:"clientEmail"`
	ClientCompany string     `json:"clientCompany"`
	ClientAddress string     `json:"clientAddress"`
	Date          string     `json:"date"`
	Currency      string     `json:"currency"`
	Items         []LineItem `json:"items"`
	TaxConfig
	PaymentTerms string `json:"paymentTerms"`
	Totals
	CreatedAt string `json:"createdAt,omitempty"`
}

// CompanyProfile is the issuing company's display profile. It feeds the
// quotation header and the share token; nothing in it affects pricing.
type CompanyProfile struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	GSTIN        string `json:"gst"`
	PaymentTerms string `json:"paymentTerms"`
	LogoDataURI  string `json:"logoBase64"`
}

const (
	// shareTokenVersion is both the token prefix ("v1.") and the envelope
	// version field. Bump it when the envelope schema changes so old clients
	// reject new tokens cleanly instead of misparsing them.
	shareTokenVersion = 1

	shareTokenPrefix = "v1."

	// ShareFragmentPrefix is the routing marker the host inspects before any
	// authentication step. A URL fragment starting with it is a share link.
	ShareFragmentPrefix = "#/quote/"

	// maxShareTokenBytes caps the encoded token. Browsers start truncating
	// or refusing URLs well before 64KB; only a near-limit embedded logo can
	// realistically push a quotation past this.
	maxShareTokenBytes = 60000
)

// ErrDecode reports a share token that is malformed, truncated, of an
// unsupported version, or missing required fields. Callers fall back to the
// normal authenticated entry path when they see it.
var ErrDecode = errors.New("share token is malformed or unsupported")

// ErrPayloadTooLarge reports a quotation too big to fit in a usable URL.
var ErrPayloadTooLarge = errors.New("share payload exceeds the URL size limit")

type shareEnvelope struct {
	Version     int            `json:"v"`
	Quotation   Quotation      `json:"quotation"`
	CompanyInfo CompanyProfile `json:"companyInfo"`
}

// EncodeShareToken serializes a quotation plus company profile into a
// URL-safe token: canonical JSON envelope, then unpadded base64url, behind a
// version prefix. The token is a one-way snapshot; later edits to the stored
// quotation never affect links already handed out.
func EncodeShareToken(q Quotation, c CompanyProfile) (string, error) {
	env := shareEnvelope{
		Version:     shareTokenVersion,
		Quotation:   q,
		CompanyInfo: c,
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encode share token: %w", err)
	}

	token := shareTokenPrefix + base64.RawURLEncoding.EncodeToString(payload)
	if len(token) > maxShareTokenBytes {
		return "", fmt.Errorf("encode share token: %d bytes: %w", len(token), ErrPayloadTooLarge)
	}
	return token, nil
}

// DecodeShareToken reconstructs the snapshot pair from a token. It is a pure,
// offline transform: no store, no network, no authentication. Every failure
// mode wraps ErrDecode.
func DecodeShareToken(token string) (Quotation, CompanyProfile, error) {
	raw, ok := strings.CutPrefix(token, shareTokenPrefix)
	if !ok || raw == "" {
		return Quotation{}, CompanyProfile{}, fmt.Errorf("missing version prefix: %w", ErrDecode)
	}

	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Quotation{}, CompanyProfile{}, fmt.Errorf("base64: %v: %w", err, ErrDecode)
	}

	var env shareEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Quotation{}, CompanyProfile{}, fmt.Errorf("envelope: %v: %w", err, ErrDecode)
	}

	if env.Version != shareTokenVersion {
		return Quotation{}, CompanyProfile{}, fmt.Errorf("unsupported version %d: %w", env.Version, ErrDecode)
	}
	if env.Quotation.QuotationID == "" {
		return Quotation{}, CompanyProfile{}, fmt.Errorf("empty quotation id: %w", ErrDecode)
	}

	return env.Quotation, env.CompanyInfo, nil
}

// BuildShareURL places a token behind the routing marker on the given origin,
// producing the URL handed to the clipboard/share collaborators.
func BuildShareURL(origin, token string) string {
	return strings.TrimSuffix(origin, "/") + "/" + ShareFragmentPrefix + token
}

// ParseShareFragment extracts the token from a URL fragment. The second
// return is false when the fragment is not a share link at all, which callers
// treat as "proceed to the normal entry flow" rather than an error.
func ParseShareFragment(fragment string) (string, bool) {
	fragment = strings.TrimPrefix(fragment, "#")
	marker := strings.TrimPrefix(ShareFragmentPrefix, "#")
	token, ok := strings.CutPrefix(fragment, marker)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
