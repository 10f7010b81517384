// Package extract turns uploaded resume files into plain text.
package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"

	MaxFileSize = 10 << 20
)

var (
	ErrUnsupported = errors.New("unsupported file type")
	ErrNoText      = errors.New("no text found in file")
)

// DetectType resolves the content type from the file extension, falling back
// to sniffing the first bytes.
func DetectType(fileName string, data []byte) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".md":
		return MimeText
	}
	ct := http.DetectContentType(data)
	switch {
	case ct == MimePDF:
		return MimePDF
	case strings.HasPrefix(ct, MimeText):
		return MimeText
	}
	return ct
}

// Text extracts plain text from data of the given content type.
func Text(contentType string, data []byte) (string, error) {
	var (
		out string
		err error
	)
	switch contentType {
	case MimeText:
		out = string(data)
	case MimePDF:
		out, err = pdfText(data)
	case MimeDOCX:
		out, err = docxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, contentType)
	}
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrNoText
	}
	return out, nil
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	return buf.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	return stripWordXML(doc.Editable().GetContent())
}

// stripWordXML keeps the text runs of a WordprocessingML body, one line per
// paragraph. Markup the decoder cannot read is an error, never passed through.
func stripWordXML(raw string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(raw))
	var (
		b      strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString("\t")
			case "br":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}
