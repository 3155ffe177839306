package fetcher

import (
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// DecodeText decodes raw page bytes into a string. The decode order is:
//
//  1. the charset declared in the Content-Type header,
//  2. UTF-8 if the bytes are valid UTF-8,
//  3. the encoding detected from the bytes themselves.
//
// GB2312 and GBK are always widened to GB18030; pages declaring the
// narrower charsets routinely contain characters outside them.
// Returns the decoded text and the name of the encoding used.
func DecodeText(raw []byte, contentType string) (string, string, error) {
	if name := headerCharset(contentType); name != "" {
		if enc, canonical, err := resolveEncoding(name); err == nil {
			if text, err := decode(enc, raw); err == nil {
				return text, canonical, nil
			}
		}
		// Bad or undecodable charset declarations fall through.
	}

	if utf8.Valid(raw) {
		return string(raw), "utf-8", nil
	}

	detector := chardet.NewTextDetector()
	detected, err := detector.DetectBest(raw)
	if err != nil {
		return "", "", fmt.Errorf("detect encoding: %w", err)
	}

	enc, canonical, err := resolveEncoding(detected.Charset)
	if err != nil {
		return "", "", fmt.Errorf("unsupported detected encoding %q: %w", detected.Charset, err)
	}

	text, err := decode(enc, raw)
	if err != nil {
		return "", "", fmt.Errorf("decode as %s: %w", canonical, err)
	}
	return text, canonical, nil
}

// headerCharset extracts the charset parameter from a Content-Type header.
// Returns "" when the header carries no usable charset.
func headerCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}

// resolveEncoding maps an encoding name to a decoder, substituting GB18030
// for the GB2312/GBK family. Returns the canonical encoding name alongside.
func resolveEncoding(name string) (encoding.Encoding, string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "gb2312", "gb-2312", "gbk", "gb18030", "gb-18030":
		return simplifiedchinese.GB18030, "gb18030", nil
	}

	enc, err := htmlindex.Get(normalized)
	if err != nil {
		return nil, "", err
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = normalized
	}
	return enc, canonical, nil
}

func decode(enc encoding.Encoding, raw []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
