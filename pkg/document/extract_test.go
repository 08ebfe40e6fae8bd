package document

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetectKind(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		mime     string
		want     Kind
	}{
		{"pdf by mime", "resume.bin", "application/pdf", KindPDF},
		{"pdf by suffix", "resume.PDF", "application/octet-stream", KindPDF},
		{"docx by mime", "upload", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", KindDocx},
		{"docx by suffix", "简历.docx", "", KindDocx},
		{"doc by mime", "x", "application/msword", KindDoc},
		{"doc by suffix", "简历.doc", "text/plain", KindDoc},
		{"mime with params", "x", "application/pdf; charset=binary", KindPDF},
		{"unknown", "resume.txt", "text/plain", KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectKind(tc.filename, tc.mime))
		})
	}
}

func TestExtractDocx(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>姓名：张三</w:t></w:r></w:p><w:p><w:r><w:t>教育背景：本科</w:t></w:r></w:p></w:body></w:document>`)
	text, err := Extract("resume.docx", "", data)
	require.NoError(t, err)
	assert.Contains(t, text, "姓名：张三")
	assert.Contains(t, text, "教育背景：本科")
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract("resume.txt", "text/plain", []byte("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractMalformedDocx(t *testing.T) {
	_, err := Extract("resume.docx", "", []byte("not a zip archive"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
	assert.NotErrorIs(t, err, ErrEmptyContent)
}

func TestExtractEmptyContent(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>   </w:t></w:r></w:p></w:body></w:document>`)
	_, err := Extract("resume.docx", "", data)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestExtractLegacyDocSalvage(t *testing.T) {
	raw := append([]byte{0xd0, 0xcf, 0x11, 0xe0}, []byte("姓名：李四 skills: Python")...)
	text, err := Extract("resume.doc", "application/msword", raw)
	require.NoError(t, err)
	assert.Contains(t, text, "姓名：李四")
	assert.Contains(t, text, "Python")
}
