// Package blobsource opens sales exports stored in a bucket (local directory, GCS, or in-memory)
// so the CLI importer can read them the same way regardless of where they live.
package blobsource

import (
	"context"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"salesboard/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// ErrObjectNotFound is returned when the bucket has no object under the key.
var ErrObjectNotFound = errors.New("sales export not found")

// Object is an open export. Closing it also closes the bucket it was read from.
type Object struct {
	*blob.Reader

	Key    string
	bucket *blob.Bucket
}

// Close releases the reader and the bucket.
func (o *Object) Close() error {
	return errors.Join(o.Reader.Close(), o.bucket.Close())
}

// ParseLocation splits a location into a bucket URL and an object key.
//
//	sales.csv                     -> file://<abs dir>, sales.csv
//	file:///data/in/sales.csv     -> file:///data/in, sales.csv
//	gs://exports/2024/sales.csv   -> gs://exports, 2024/sales.csv
func ParseLocation(location string) (bucketURL, key string, err error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", "", errors.New("source location is empty")
	}

	if !strings.Contains(location, "://") {
		abs, err := filepath.Abs(location)
		if err != nil {
			return "", "", errors.Wrapf(err, "failed to resolve %q", location)
		}

		return "file://" + filepath.ToSlash(filepath.Dir(abs)), filepath.Base(abs), nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", "", errors.Wrapf(err, "invalid source location %q", location)
	}

	if u.Scheme == "file" {
		dir, file := path.Split(u.Path)
		key = file
		u.Path = strings.TrimSuffix(dir, "/")
		if u.Path == "" {
			u.Path = "/"
		}
	} else {
		key = strings.TrimPrefix(u.Path, "/")
		u.Path = ""
	}

	if key == "" {
		return "", "", errors.Errorf("source location %q has no object key", location)
	}

	return u.String(), key, nil
}

// Open resolves location, opens its bucket and returns a reader over the object.
func Open(ctx context.Context, location string) (*Object, error) {
	bucketURL, key, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	reader, err := OpenReader(ctx, bucket, key)
	if err != nil {
		_ = bucket.Close()

		return nil, err
	}

	return &Object{Reader: reader, Key: key, bucket: bucket}, nil
}

// OpenReader opens key in an already opened bucket.
func OpenReader(ctx context.Context, bucket *blob.Bucket, key string) (*blob.Reader, error) {
	reader, err := bucket.NewReader(ctx, key, nil)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, errors.Wrap(ErrObjectNotFound, key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return reader, nil
}
