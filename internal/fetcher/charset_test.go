package fetcher

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// gb18030Bytes encodes a string as GB18030 for test fixtures.
func gb18030Bytes(t *testing.T, s string) []byte {
	t.Helper()
	raw, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return raw
}

const chineseSample = "这是一个测试页面，包含足够多的中文内容用于字符编码检测。" +
	"论坛帖子通常混合中英文，编码检测需要一定长度的样本才可靠。"

func TestDecodeText_UTF8(t *testing.T) {
	text, enc, err := DecodeText([]byte("hello, 世界"), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("DecodeText() error = %v", err)
	}
	if text != "hello, 世界" {
		t.Errorf("DecodeText() = %q, want %q", text, "hello, 世界")
	}
	if enc != "utf-8" {
		t.Errorf("encoding = %q, want utf-8", enc)
	}
}

func TestDecodeText_HeaderGB2312_UsesGB18030(t *testing.T) {
	raw := gb18030Bytes(t, chineseSample)

	text, enc, err := DecodeText(raw, "text/html; charset=gb2312")
	if err != nil {
		t.Fatalf("DecodeText() error = %v", err)
	}
	if enc != "gb18030" {
		t.Errorf("encoding = %q, want gb18030", enc)
	}
	if text != chineseSample {
		t.Errorf("DecodeText() = %q, want %q", text, chineseSample)
	}
}

func TestDecodeText_DetectsChineseWithoutHeader(t *testing.T) {
	raw := gb18030Bytes(t, chineseSample)

	text, enc, err := DecodeText(raw, "text/html")
	if err != nil {
		t.Fatalf("DecodeText() error = %v", err)
	}
	if enc != "gb18030" {
		t.Errorf("encoding = %q, want gb18030", enc)
	}
	if text != chineseSample {
		t.Errorf("DecodeText() = %q, want %q", text, chineseSample)
	}
}

func TestDecodeText_HeaderLatin1(t *testing.T) {
	// "café" in ISO-8859-1
	raw := []byte{'c', 'a', 'f', 0xE9}

	text, _, err := DecodeText(raw, `text/html; charset=iso-8859-1`)
	if err != nil {
		t.Fatalf("DecodeText() error = %v", err)
	}
	if text != "café" {
		t.Errorf("DecodeText() = %q, want %q", text, "café")
	}
}

func TestDecodeText_BogusHeaderFallsThrough(t *testing.T) {
	text, enc, err := DecodeText([]byte("plain ascii"), "text/html; charset=not-a-charset")
	if err != nil {
		t.Fatalf("DecodeText() error = %v", err)
	}
	if text != "plain ascii" {
		t.Errorf("DecodeText() = %q, want %q", text, "plain ascii")
	}
	if enc != "utf-8" {
		t.Errorf("encoding = %q, want utf-8", enc)
	}
}

func TestResolveEncoding_GBFamily(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"gb2312", "gb2312"},
		{"gb2312_upper", "GB2312"},
		{"gbk", "gbk"},
		{"gb18030", "gb18030"},
		{"gb18030_hyphen", "GB-18030"},
		{"padded", " gbk "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, canonical, err := resolveEncoding(tt.in)
			if err != nil {
				t.Fatalf("resolveEncoding(%q) error = %v", tt.in, err)
			}
			if enc != simplifiedchinese.GB18030 {
				t.Errorf("resolveEncoding(%q) should map to GB18030", tt.in)
			}
			if canonical != "gb18030" {
				t.Errorf("canonical = %q, want gb18030", canonical)
			}
		})
	}
}

func TestResolveEncoding_Unknown(t *testing.T) {
	_, _, err := resolveEncoding("klingon-1")
	if err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestHeaderCharset(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{"with_charset", "text/html; charset=utf-8", "utf-8"},
		{"no_charset", "text/html", ""},
		{"empty", "", ""},
		{"extra_params", `text/html; charset=gb2312; boundary=x`, "gb2312"},
		{"malformed", "not a media type at all;;;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := headerCharset(tt.contentType)
			if !strings.EqualFold(got, tt.want) {
				t.Errorf("headerCharset(%q) = %q, want %q", tt.contentType, got, tt.want)
			}
		})
	}
}
