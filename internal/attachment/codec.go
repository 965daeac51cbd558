// Package attachment converts thumbnail uploads into embedded attachment
// records and stored attachments back into servable byte streams.
package attachment

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"mini-news-api/internal/domain"
)

const (
	// DefaultMaxSize is the upload limit for a single thumbnail (5 MiB).
	DefaultMaxSize int64 = 5 << 20

	// FieldName is the multipart field carrying the thumbnail.
	FieldName = "thumb"

	genericMimetype = "application/octet-stream"
)

var (
	ErrTooManyFiles = errors.New("only one file may be uploaded")
	ErrFileTooLarge = errors.New("file exceeds the maximum upload size")
	ErrNotImage     = errors.New("only image files are allowed")
	ErrEmptyFile    = errors.New("uploaded file is empty")
)

// Upload is an inbound file before it becomes an attachment.
type Upload struct {
	// Filename is the stored name requested by the client. Generated when empty.
	Filename     string
	OriginalName string
	Mimetype     string
	Size         int64
	Data         []byte
}

// Payload is a stored attachment ready to be written to an HTTP response.
type Payload struct {
	ContentType   string
	ContentLength int64
	Filename      string
	Data          []byte
}

// ContentDisposition returns the inline Content-Disposition header value.
func (p *Payload) ContentDisposition() string {
	name := strings.ReplaceAll(p.Filename, `"`, `\"`)
	return fmt.Sprintf(`inline; filename="%s"`, name)
}

// Codec encodes uploads and decodes stored attachments.
type Codec struct {
	maxSize int64
	now     func() time.Time
}

// NewCodec creates a Codec. A non-positive maxSize selects DefaultMaxSize.
func NewCodec(maxSize int64) *Codec {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Codec{maxSize: maxSize, now: time.Now}
}

// WithClock replaces the codec clock. Used by tests.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// MaxSize returns the configured upload limit in bytes.
func (c *Codec) MaxSize() int64 {
	return c.maxSize
}

// Validate checks an upload against the size and type constraints.
func (c *Codec) Validate(u *Upload) error {
	if u.Size > c.maxSize || int64(len(u.Data)) > c.maxSize {
		return invalid(ErrFileTooLarge)
	}
	if len(u.Data) == 0 {
		return invalid(ErrEmptyFile)
	}
	if !isImage(u.Mimetype) {
		return invalid(ErrNotImage)
	}
	return nil
}

// Encode validates an upload and builds the attachment record for it.
func (c *Codec) Encode(u *Upload) (*domain.Attachment, error) {
	if u == nil {
		return nil, nil
	}
	resolved := *u
	resolved.Mimetype = resolveMimetype(u.Mimetype, u.Data)
	if err := c.Validate(&resolved); err != nil {
		return nil, err
	}

	now := c.now()
	original := strings.TrimSpace(u.OriginalName)
	filename := strings.TrimSpace(u.Filename)
	if filename == "" {
		filename = fmt.Sprintf("%d-thumb-%s", now.UnixMilli(), original)
	}

	return &domain.Attachment{
		Filename:     filename,
		OriginalName: original,
		Mimetype:     strings.TrimSpace(resolved.Mimetype),
		Size:         int64(len(u.Data)),
		Data:         u.Data,
		UploadedAt:   now,
	}, nil
}

// Decode returns the stored bytes verbatim with the headers needed to serve them.
func (c *Codec) Decode(a *domain.Attachment) (*Payload, error) {
	if a == nil {
		return nil, domain.ErrNoAttachment
	}
	if a.Mimetype == "" || len(a.Data) == 0 {
		return nil, fmt.Errorf("%w: missing content", domain.ErrMalformedAttachment)
	}
	if a.Size != int64(len(a.Data)) {
		return nil, fmt.Errorf("%w: size %d does not match %d stored bytes",
			domain.ErrMalformedAttachment, a.Size, len(a.Data))
	}

	return &Payload{
		ContentType:   a.Mimetype,
		ContentLength: a.Size,
		Filename:      a.OriginalName,
		Data:          a.Data,
	}, nil
}

// FromMultipart extracts the upload in field from a parsed multipart form.
// Every file in the form counts towards the single-file limit and must be an
// image; files in other fields are then ignored. Returns nil when field is empty.
func (c *Codec) FromMultipart(form *multipart.Form, field string) (*Upload, error) {
	if form == nil {
		return nil, nil
	}

	total := 0
	for _, headers := range form.File {
		total += len(headers)
	}
	if total == 0 {
		return nil, nil
	}
	if total > 1 {
		return nil, invalid(ErrTooManyFiles)
	}

	var upload *Upload
	for name, headers := range form.File {
		fh := headers[0]
		if fh.Size > c.maxSize {
			return nil, invalid(ErrFileTooLarge)
		}

		u, err := c.read(fh)
		if err != nil {
			return nil, err
		}
		if err := c.Validate(u); err != nil {
			return nil, err
		}
		if name == field {
			upload = u
		}
	}

	return upload, nil
}

func (c *Codec) read(fh *multipart.FileHeader) (*Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, c.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > c.maxSize {
		return nil, invalid(ErrFileTooLarge)
	}

	return &Upload{
		OriginalName: fh.Filename,
		Mimetype:     resolveMimetype(fh.Header.Get("Content-Type"), data),
		Size:         int64(len(data)),
		Data:         data,
	}, nil
}

// resolveMimetype keeps a declared type unless it is missing or generic,
// in which case the type is sniffed from the content.
func resolveMimetype(declared string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && !strings.EqualFold(declared, genericMimetype) {
		return declared
	}
	if len(data) == 0 {
		return declared
	}
	detected := mimetype.Detect(data).String()
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}
	return detected
}

func isImage(mt string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mt)), "image/")
}

func invalid(err error) error {
	return &domain.ValidationError{
		Message: err.Error(),
		Fields:  map[string]string{FieldName: err.Error()},
		Err:     err,
	}
}
