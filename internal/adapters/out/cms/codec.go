package cms

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// The CMS speaks fixed-namespace SOAP. Responses from the field vary enough
// (prefixes, casings, missing envelopes) that full XML validation would
// reject messages the business can still use, so extraction scans for tag
// markers instead and degrades to the empty string.

const (
	soapNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	cmsNamespace  = "http://swiftlogistics.lk/cms"
)

// Field is one tag/value pair inside an operation body. Order is
// significant on the wire, so fields travel as a slice, not a map.
type Field struct {
	Tag   string
	Value string
}

// Envelope builds the canonical namespaced request envelope for an
// operation.
func Envelope(operation string, fields ...Field) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<soap:Envelope xmlns:soap=%q\n               xmlns:cms=%q>\n", soapNamespace, cmsNamespace)
	b.WriteString("    <soap:Header/>\n    <soap:Body>\n")
	fmt.Fprintf(&b, "        <cms:%s>\n", operation)
	for _, f := range fields {
		fmt.Fprintf(&b, "            <cms:%s>%s</cms:%s>\n", f.Tag, escape(f.Value), f.Tag)
	}
	fmt.Fprintf(&b, "        </cms:%s>\n", operation)
	b.WriteString("    </soap:Body>\n</soap:Envelope>")
	return b.String()
}

// PlainEnvelope builds an unprefixed envelope variant. Some CMS deployments
// only accept bodies without the cms namespace prefix; the gateway tries
// this shape when the canonical one is rejected.
func PlainEnvelope(operation string, withHeader bool, fields ...Field) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<soap:Envelope xmlns:soap=%q>\n", soapNamespace)
	if withHeader {
		b.WriteString("    <soap:Header/>\n")
	}
	b.WriteString("    <soap:Body>\n")
	fmt.Fprintf(&b, "        <%s>\n", operation)
	for _, f := range fields {
		fmt.Fprintf(&b, "            <%s>%s</%s>\n", f.Tag, escape(f.Value), f.Tag)
	}
	fmt.Fprintf(&b, "        </%s>\n", operation)
	b.WriteString("    </soap:Body>\n</soap:Envelope>")
	return b.String()
}

var (
	tagPatternMu sync.Mutex
	tagPatterns  = map[string]*regexp.Regexp{}
)

func tagPattern(tag string) *regexp.Regexp {
	tagPatternMu.Lock()
	defer tagPatternMu.Unlock()
	re, ok := tagPatterns[tag]
	if !ok {
		re = regexp.MustCompile(`(?is)<(?:\w+:)?` + regexp.QuoteMeta(tag) + `>(.*?)</(?:\w+:)?` + regexp.QuoteMeta(tag) + `>`)
		tagPatterns[tag] = re
	}
	return re
}

// Extract returns the content of the first matching tag, trying the
// candidate tag names in order. Matching ignores case and namespace
// prefixes; the first match wins. A malformed or empty response yields ""
// rather than an error.
func Extract(response string, tags ...string) string {
	for _, tag := range tags {
		if m := tagPattern(tag).FindStringSubmatch(response); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// IsFault reports whether the response carries a SOAP fault or an
// unknown-operation rejection, both of which mean the request shape was not
// accepted.
func IsFault(response string) bool {
	return strings.Contains(response, "soap:Fault") ||
		strings.Contains(response, "Unknown operation")
}

func escape(v string) string {
	return xmlEscaper.Replace(v)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
