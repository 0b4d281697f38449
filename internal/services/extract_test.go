package services

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const slideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree>
    <p:sp><p:txBody>
      <a:p><a:r><a:t>Cardiac output</a:t></a:r></a:p>
      <a:p><a:r><a:t>equals stroke volume times heart rate</a:t></a:r></a:p>
    </p:txBody></p:sp>
  </p:spTree></p:cSld>
</p:sld>`

func pptxBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("ppt/slides/slide1.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(slideXML))
	require.NoError(t, err)

	// Non-slide entries must be ignored.
	w, err = zw.Create("ppt/notesSlides/notesSlide1.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<notes><a:t>speaker notes</a:t></notes>`))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestSupported(t *testing.T) {
	svc := NewExtractService()

	assert.True(t, svc.Supported(MimePDF))
	assert.True(t, svc.Supported(MimePPTX))
	assert.True(t, svc.Supported(MimeText))
	assert.True(t, svc.Supported(MimeMarkdown))
	assert.False(t, svc.Supported("image/png"))
}

func TestExtract_PlainTextPassthrough(t *testing.T) {
	svc := NewExtractService()

	text := svc.Extract(MimeText, []byte("the heart is a pump"))
	assert.Equal(t, "the heart is a pump", text)

	text = svc.Extract(MimeMarkdown, []byte("# Cardiology\nnotes"))
	assert.Equal(t, "# Cardiology\nnotes", text)
}

func TestExtract_PPTXTextRuns(t *testing.T) {
	svc := NewExtractService()

	text := svc.Extract(MimePPTX, pptxBytes(t))

	assert.Contains(t, text, "Cardiac output")
	assert.Contains(t, text, "equals stroke volume times heart rate")
	assert.NotContains(t, text, "speaker notes")
}

func TestExtract_MalformedPPTXReportsInline(t *testing.T) {
	svc := NewExtractService()

	text := svc.Extract(MimePPTX, []byte("not a zip archive"))
	assert.Contains(t, text, "Error processing PPTX")
}

func TestExtract_MalformedPDFReportsInline(t *testing.T) {
	svc := NewExtractService()

	text := svc.Extract(MimePDF, []byte("%PDF-1.4 truncated garbage"))
	assert.Contains(t, text, "Error processing PDF")
}
