package attachment

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-news-api/internal/domain"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

type testFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func buildForm(t *testing.T, files ...testFile) *multipart.Form {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "Some title"))
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form
}

func TestCodec_EncodeDecodeRoundTrip(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	codec := NewCodec(0).WithClock(func() time.Time { return fixed })

	data := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0xAB}, 1024)...)
	att, err := codec.Encode(&Upload{
		OriginalName: " photo.png ",
		Mimetype:     "image/png",
		Size:         int64(len(data)),
		Data:         data,
	})
	require.NoError(t, err)
	require.NotNil(t, att)

	assert.Equal(t, "photo.png", att.OriginalName)
	assert.Equal(t, fmt.Sprintf("%d-thumb-photo.png", fixed.UnixMilli()), att.Filename)
	assert.Equal(t, int64(len(data)), att.Size)
	assert.Equal(t, fixed, att.UploadedAt)

	payload, err := codec.Decode(att)
	require.NoError(t, err)
	assert.Equal(t, "image/png", payload.ContentType)
	assert.Equal(t, int64(len(data)), payload.ContentLength)
	assert.Equal(t, data, payload.Data)
	assert.Equal(t, `inline; filename="photo.png"`, payload.ContentDisposition())
}

func TestCodec_Encode(t *testing.T) {
	codec := NewCodec(64)

	t.Run("nil upload is no attachment", func(t *testing.T) {
		att, err := codec.Encode(nil)
		require.NoError(t, err)
		assert.Nil(t, att)
	})

	t.Run("keeps requested filename", func(t *testing.T) {
		att, err := codec.Encode(&Upload{Filename: "cover.png", OriginalName: "a.png", Mimetype: "image/png", Data: pngHeader})
		require.NoError(t, err)
		assert.Equal(t, "cover.png", att.Filename)
	})

	t.Run("rejects text/plain", func(t *testing.T) {
		_, err := codec.Encode(&Upload{OriginalName: "a.txt", Mimetype: "text/plain", Data: []byte("hello")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotImage))
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("rejects oversized data", func(t *testing.T) {
		_, err := codec.Encode(&Upload{OriginalName: "big.png", Mimetype: "image/png", Data: make([]byte, 65)})
		assert.True(t, errors.Is(err, ErrFileTooLarge))
	})

	t.Run("rejects empty data", func(t *testing.T) {
		_, err := codec.Encode(&Upload{OriginalName: "a.png", Mimetype: "image/png"})
		assert.True(t, errors.Is(err, ErrEmptyFile))
	})

	t.Run("sniffs generic content type", func(t *testing.T) {
		upload := &Upload{OriginalName: "a.png", Mimetype: "application/octet-stream", Data: pngHeader}
		att, err := codec.Encode(upload)
		require.NoError(t, err)
		assert.Equal(t, "image/png", att.Mimetype)
		assert.Equal(t, "application/octet-stream", upload.Mimetype)
	})
}

func TestCodec_Decode(t *testing.T) {
	codec := NewCodec(0)

	t.Run("missing attachment is not found", func(t *testing.T) {
		_, err := codec.Decode(nil)
		assert.ErrorIs(t, err, domain.ErrNoAttachment)
	})

	t.Run("missing bytes is malformed", func(t *testing.T) {
		_, err := codec.Decode(&domain.Attachment{Mimetype: "image/png"})
		assert.ErrorIs(t, err, domain.ErrMalformedAttachment)
		assert.NotErrorIs(t, err, domain.ErrNoAttachment)
	})

	t.Run("size mismatch is malformed", func(t *testing.T) {
		_, err := codec.Decode(&domain.Attachment{Mimetype: "image/png", Size: 3, Data: []byte{1, 2}})
		assert.ErrorIs(t, err, domain.ErrMalformedAttachment)
	})

	t.Run("quotes in filename are escaped", func(t *testing.T) {
		p := &Payload{Filename: `a"b.png`}
		assert.Equal(t, `inline; filename="a\"b.png"`, p.ContentDisposition())
	})
}

func TestCodec_FromMultipart(t *testing.T) {
	codec := NewCodec(1024)

	t.Run("no files", func(t *testing.T) {
		u, err := codec.FromMultipart(buildForm(t), FieldName)
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("single image in thumb field", func(t *testing.T) {
		form := buildForm(t, testFile{field: "thumb", filename: "p.png", contentType: "image/png", data: pngHeader})
		u, err := codec.FromMultipart(form, FieldName)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "p.png", u.OriginalName)
		assert.Equal(t, "image/png", u.Mimetype)
		assert.Equal(t, pngHeader, u.Data)
		assert.Equal(t, int64(len(pngHeader)), u.Size)
	})

	t.Run("octet-stream part is sniffed", func(t *testing.T) {
		form := buildForm(t, testFile{field: "thumb", filename: "p.png", contentType: "application/octet-stream", data: pngHeader})
		u, err := codec.FromMultipart(form, FieldName)
		require.NoError(t, err)
		assert.Equal(t, "image/png", u.Mimetype)
	})

	t.Run("rejects text file", func(t *testing.T) {
		form := buildForm(t, testFile{field: "thumb", filename: "notes.txt", contentType: "text/plain", data: []byte("hello")})
		_, err := codec.FromMultipart(form, FieldName)
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("rejects two files", func(t *testing.T) {
		form := buildForm(t,
			testFile{field: "thumb", filename: "a.png", contentType: "image/png", data: pngHeader},
			testFile{field: "thumb", filename: "b.png", contentType: "image/png", data: pngHeader},
		)
		_, err := codec.FromMultipart(form, FieldName)
		assert.ErrorIs(t, err, ErrTooManyFiles)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		data := append(append([]byte{}, pngHeader...), make([]byte, 2048)...)
		form := buildForm(t, testFile{field: "thumb", filename: "big.png", contentType: "image/png", data: data})
		_, err := codec.FromMultipart(form, FieldName)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("image in another field is ignored", func(t *testing.T) {
		form := buildForm(t, testFile{field: "cover", filename: "a.png", contentType: "image/png", data: pngHeader})
		u, err := codec.FromMultipart(form, FieldName)
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}
