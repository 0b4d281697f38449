package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	MimePDF      = "application/pdf"
	MimePPTX     = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MimeText     = "text/plain"
	MimeMarkdown = "text/markdown"
)

// ExtractService turns uploaded study files into plain text. Extraction
// failures are reported as content (an "Error ..." prefixed string), not as
// errors: the caller shows whatever comes back.
type ExtractService struct{}

func NewExtractService() *ExtractService {
	return &ExtractService{}
}

func (s *ExtractService) Supported(contentType string) bool {
	switch contentType {
	case MimePDF, MimePPTX, MimeText, MimeMarkdown:
		return true
	}
	return false
}

func (s *ExtractService) Extract(contentType string, data []byte) string {
	switch contentType {
	case MimePDF:
		return s.extractPDF(data)
	case MimePPTX:
		return s.extractPPTX(data)
	case MimeText, MimeMarkdown:
		return string(data)
	}
	return fmt.Sprintf("Error: unsupported file type %q", contentType)
}

func (s *ExtractService) extractPDF(data []byte) (text string) {
	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("Error processing PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Sprintf("Error processing PDF: %v", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return fmt.Sprintf("Error processing PDF: %v", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return fmt.Sprintf("Error processing PDF: %v", err)
	}
	return buf.String()
}

func (s *ExtractService) extractPPTX(data []byte) string {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Sprintf("Error processing PPTX: %v", err)
	}

	var sb strings.Builder
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/slide") || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Sprintf("Error processing PPTX: %v", err)
		}
		slideText, err := slideTextRuns(rc)
		rc.Close()
		if err != nil {
			return fmt.Sprintf("Error processing PPTX: %v", err)
		}
		sb.WriteString(slideText)
	}
	return sb.String()
}

// slideTextRuns collects the <a:t> text runs of one slide, one line per run.
func slideTextRuns(r io.Reader) (string, error) {
	var sb strings.Builder
	dec := xml.NewDecoder(r)
	inTextRun := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inTextRun = false
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
