// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package uploads

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	DefaultExpiry  = 15 * time.Minute
	DefaultMaxSize = 25 * 1000 * 1000 // 25 MB
)

var (
	ErrMissingFilename = errors.New("filename is required")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrTooLarge        = errors.New("file too large")
	ErrInvalidSize     = errors.New("size must be a positive number of bytes")
	ErrMissingOwner    = errors.New("owner is required")
)

// allowedTypes are the image formats artworks may be uploaded in.
var allowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
	"image/avif",
	"image/tiff",
}

// PutObjectPresigner is the part of *s3.PresignClient the issuer uses.
type PutObjectPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Request describes the file the browser is about to upload.
type Request struct {
	OwnerID     string
	Filename    string
	ContentType string
	Size        int64
}

// SignedUpload is a time-boxed URL the browser can PUT the file to.
type SignedUpload struct {
	URL       string
	Method    string
	Headers   map[string]string
	Key       string
	PublicURL string
	ExpiresAt time.Time
}

// Issuer hands out presigned upload URLs for a single bucket.
type Issuer struct {
	presigner     PutObjectPresigner
	bucket        string
	publicBaseURL string
	expiry        time.Duration
	maxSize       int64
	now           func() time.Time
}

// Config configures NewIssuer.
type Config struct {
	Bucket        string
	Region        string
	Endpoint      string // custom S3-compatible endpoint (R2, MinIO); enables path-style
	PublicBaseURL string
	Expiry        time.Duration
	MaxSize       int64
}

// NewIssuer loads AWS credentials from the default chain and builds an issuer.
func NewIssuer(ctx context.Context, cfg Config) (*Issuer, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("upload bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewIssuerWithPresigner(s3.NewPresignClient(client), cfg), nil
}

// NewIssuerWithPresigner builds an issuer around an existing presigner.
func NewIssuerWithPresigner(p PutObjectPresigner, cfg Config) *Issuer {
	if cfg.Expiry <= 0 {
		cfg.Expiry = DefaultExpiry
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	return &Issuer{
		presigner:     p,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		expiry:        cfg.Expiry,
		maxSize:       cfg.MaxSize,
		now:           time.Now,
	}
}

// MaxSize is the largest upload the issuer signs for.
func (i *Issuer) MaxSize() int64 {
	return i.maxSize
}

// Issue validates the request and presigns a PUT for a fresh object key.
func (i *Issuer) Issue(ctx context.Context, req Request) (*SignedUpload, error) {
	if req.OwnerID == "" {
		return nil, ErrMissingOwner
	}
	if strings.TrimSpace(req.Filename) == "" {
		return nil, ErrMissingFilename
	}

	mt, err := resolveType(req.ContentType)
	if err != nil {
		return nil, err
	}
	if req.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if req.Size > i.maxSize {
		return nil, fmt.Errorf("%w: %s exceeds the %s limit", ErrTooLarge,
			humanize.Bytes(uint64(req.Size)), humanize.Bytes(uint64(i.maxSize)))
	}

	key := ObjectKey(req.OwnerID, uuid.NewString(), mt.Extension())
	// Length and type are signed so the store rejects any other body
	input := &s3.PutObjectInput{
		Bucket:        aws.String(i.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(mt.String()),
		ContentLength: aws.Int64(req.Size),
	}

	expiresAt := i.now().Add(i.expiry)
	signed, err := i.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(i.expiry))
	if err != nil {
		return nil, &Error{Op: "presign", Bucket: i.bucket, Key: key, Err: err}
	}

	headers := map[string]string{}
	for name := range signed.SignedHeader {
		if strings.EqualFold(name, "Host") {
			continue
		}
		headers[name] = signed.SignedHeader.Get(name)
	}

	out := &SignedUpload{
		URL:       signed.URL,
		Method:    signed.Method,
		Headers:   headers,
		Key:       key,
		ExpiresAt: expiresAt,
	}
	if i.publicBaseURL != "" {
		out.PublicURL = i.publicBaseURL + "/" + key
	}
	return out, nil
}

// ObjectKey is the storage key for an owner's artwork image.
func ObjectKey(ownerID, id, ext string) string {
	return "artworks/" + ownerID + "/" + id + ext
}

func resolveType(contentType string) (*mimetype.MIME, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	mt := mimetype.Lookup(contentType)
	if mt == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	for _, allowed := range allowedTypes {
		if mt.Is(allowed) {
			return mt, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
}

// Error wraps an object storage failure with the bucket and key involved.
type Error struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("uploads.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	return fmt.Sprintf("uploads.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
