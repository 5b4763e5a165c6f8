package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/shale-dev/shale/filesystem"
)

// Client serves pages out of an object bucket through the
// filesystem.Filesystem interface, so a server can host a bucket the
// same way it hosts a directory. Object prefixes with at least one
// object below them count as directories.
type Client struct {
	minio   *minio.Client
	bucket  string
	timeout time.Duration
}

// NewClient creates a bucket-backed filesystem from the configuration.
// The connection is lazy; the first operation surfaces network errors.
func NewClient(cfg Config) (*Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: create minio client: %w", err)
	}

	return &Client{
		minio:   minioClient,
		bucket:  cfg.Bucket,
		timeout: timeoutDuration,
	}, nil
}

// ReadFile implements filesystem.Filesystem.
func (client *Client) ReadFile(path string) ([]byte, error) {
	k := key(path)
	if k == "" {
		return nil, fmt.Errorf("%w: %s", filesystem.ErrFileNotFound, path)
	}

	ctx, cancel := client.operationContext()
	defer cancel()

	object, err := client.minio.GetObject(ctx, client.bucket, k, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("storage: get %s: %w", k, err)
	}
	defer object.Close()

	// GetObject connects lazily; a missing key surfaces on the read.
	content, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", filesystem.ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("storage: read %s: %w", k, err)
	}

	return content, nil
}

// Exists implements filesystem.Filesystem. An object or an object
// prefix both count; the empty key addresses the bucket root.
func (client *Client) Exists(path string) (bool, error) {
	k := key(path)
	if k == "" {
		return true, nil
	}

	ctx, cancel := client.operationContext()
	defer cancel()

	_, err := client.minio.StatObject(ctx, client.bucket, k, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return client.IsDirectory(path)
	}

	return false, fmt.Errorf("storage: stat %s: %w", k, err)
}

// IsDirectory implements filesystem.Filesystem.
func (client *Client) IsDirectory(path string) (bool, error) {
	k := key(path)
	if k == "" {
		return true, nil
	}

	ctx, cancel := client.operationContext()
	defer cancel()

	objects := client.minio.ListObjects(ctx, client.bucket, minio.ListObjectsOptions{
		Prefix:  k + "/",
		MaxKeys: 1,
	})

	for object := range objects {
		if object.Err != nil {
			return false, fmt.Errorf("storage: list %s: %w", k, object.Err)
		}

		return true, nil
	}

	return false, nil
}

func (client *Client) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), client.timeout)
}

// key maps a resolved page path onto an object key. Keys carry no
// leading slash; the empty key addresses the bucket root.
func key(path string) string {
	return strings.TrimPrefix(path, "/")
}
